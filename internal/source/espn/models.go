package espn

// scoreboardResponse is the shape of the ESPN site API scoreboard endpoint,
// GET /apis/site/v2/sports/soccer/{league}/scoreboard.
type scoreboardResponse struct {
	Leagues []scoreboardLeague `json:"leagues"`
	Events  []event            `json:"events"`
}

type scoreboardLeague struct {
	Name string `json:"name"`
}

type event struct {
	ID           string        `json:"id"`
	Status       eventStatus   `json:"status"`
	Competitions []competition `json:"competitions"`
}

type eventStatus struct {
	DisplayClock string          `json:"displayClock"` // e.g. "45'"
	Type         eventStatusType `json:"type"`
}

type eventStatusType struct {
	State string `json:"state"` // "pre", "in", "post"
}

type competition struct {
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	HomeAway string `json:"homeAway"` // "home" or "away"
	Score    string `json:"score"`
	Team     team   `json:"team"`
}

type team struct {
	DisplayName string `json:"displayName"`
}
