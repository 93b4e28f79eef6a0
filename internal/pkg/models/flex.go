package models

import (
	"encoding/json"
	"fmt"
)

// FlexString is a string that also accepts JSON numbers and null when
// decoding. Live data APIs are inconsistent about whether minutes and
// scores arrive as "45", 45 or 45.0; FlexString keeps the literal as-is
// so "45" and 45 both decode to "45".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	// json.Number preserves the original literal, so 45 stays "45"
	// instead of becoming "45.000000".
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("flex string: cannot decode %s", string(data))
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// Or returns the value, or def when the field was absent or empty.
func (f FlexString) Or(def string) string {
	if f == "" {
		return def
	}
	return string(f)
}

func (f FlexString) String() string {
	return string(f)
}
