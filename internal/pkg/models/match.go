package models

// StatusLive is the status shown for every match in the live feed.
// The feed only ever contains matches that are currently being played.
const StatusLive = "live"

// RawMatch is one loosely typed record as returned by a live matches source.
// All fields are optional: sources disagree about which keys they fill and
// whether scores/minutes come as strings or numbers, so the numeric-ish
// fields use FlexString and defaults are applied at formatting time.
type RawMatch struct {
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	League    string     `json:"league"`
	Minute    FlexString `json:"minute"`
	HomeScore FlexString `json:"home_score"`
	AwayScore FlexString `json:"away_score"`
}

// DisplayMatch is the fixed-schema record consumed by the UI to render one
// live match entry. Recomputed from scratch on every refresh, never mutated.
type DisplayMatch struct {
	ID     int    `json:"id"`     // 1-based position in the source list
	Home   string `json:"home"`
	Away   string `json:"away"`
	League string `json:"league"`
	Time   string `json:"time"`   // wall-clock HH:MM at formatting time
	Status string `json:"status"` // always StatusLive
	Minute string `json:"minute"` // e.g. "45'"
	Score  string `json:"score"`  // e.g. "1-0"
}
