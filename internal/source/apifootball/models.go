package apifootball

// fixturesResponse is the shape of GET /v3/fixtures?live=all.
// Only the fields the live feed needs are decoded.
type fixturesResponse struct {
	Response []fixtureEntry `json:"response"`
}

type fixtureEntry struct {
	Fixture fixtureData `json:"fixture"`
	Teams   teams       `json:"teams"`
	Goals   goals       `json:"goals"`
	League  league      `json:"league"`
}

type fixtureData struct {
	ID     int64         `json:"id"`
	Status fixtureStatus `json:"status"`
}

type fixtureStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"` // minutes played, null before kick-off
}

type teams struct {
	Home team `json:"home"`
	Away team `json:"away"`
}

type team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type league struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
