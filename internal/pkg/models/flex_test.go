package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringDecoding(t *testing.T) {
	var raw RawMatch
	payload := `{"home_team":"A","away_team":"B","minute":45,"home_score":"1","away_score":2.5}`
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw.Minute != "45" {
		t.Errorf("minute = %q, want 45", raw.Minute)
	}
	if raw.HomeScore != "1" {
		t.Errorf("home_score = %q, want 1", raw.HomeScore)
	}
	if raw.AwayScore != "2.5" {
		t.Errorf("away_score = %q, want 2.5 (literal preserved)", raw.AwayScore)
	}
}

func TestFlexStringNullAndAbsent(t *testing.T) {
	var raw RawMatch
	payload := `{"home_team":"A","minute":null}`
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw.Minute != "" || raw.HomeScore != "" {
		t.Errorf("null/absent should decode to empty: minute=%q home_score=%q", raw.Minute, raw.HomeScore)
	}
	if raw.Minute.Or("0") != "0" {
		t.Errorf("Or default not applied: %q", raw.Minute.Or("0"))
	}
}

func TestFlexStringOrKeepsValue(t *testing.T) {
	f := FlexString("7")
	if f.Or("0") != "7" {
		t.Errorf("Or replaced a present value: %q", f.Or("0"))
	}
}

func TestFlexStringRejectsObjects(t *testing.T) {
	var f FlexString
	if err := json.Unmarshal([]byte(`{"nested":true}`), &f); err == nil {
		t.Error("expected error for object value")
	}
}
