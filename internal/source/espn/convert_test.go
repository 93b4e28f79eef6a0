package espn

import (
	"encoding/json"
	"testing"
)

const scoreboardPayload = `{
  "leagues": [{"name": "English Premier League"}],
  "events": [
    {
      "id": "1",
      "status": {"displayClock": "73'", "type": {"state": "in"}},
      "competitions": [{"competitors": [
        {"homeAway": "home", "score": "1", "team": {"displayName": "Chelsea"}},
        {"homeAway": "away", "score": "1", "team": {"displayName": "Tottenham"}}
      ]}]
    },
    {
      "id": "2",
      "status": {"displayClock": "0'", "type": {"state": "pre"}},
      "competitions": [{"competitors": [
        {"homeAway": "home", "score": "0", "team": {"displayName": "Everton"}},
        {"homeAway": "away", "score": "0", "team": {"displayName": "Fulham"}}
      ]}]
    }
  ]
}`

func TestLiveMatchesPicksInProgress(t *testing.T) {
	var sb scoreboardResponse
	if err := json.Unmarshal([]byte(scoreboardPayload), &sb); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out := liveMatches(&sb)
	if len(out) != 1 {
		t.Fatalf("expected 1 live match, got %d", len(out))
	}

	m := out[0]
	if m.HomeTeam != "Chelsea" || m.AwayTeam != "Tottenham" {
		t.Errorf("teams: %s vs %s", m.HomeTeam, m.AwayTeam)
	}
	if m.League != "English Premier League" {
		t.Errorf("league = %q", m.League)
	}
	if m.Minute != "73" {
		t.Errorf("minute = %q, want 73 (apostrophe stripped)", m.Minute)
	}
	if m.HomeScore != "1" || m.AwayScore != "1" {
		t.Errorf("score = %s-%s, want 1-1", m.HomeScore, m.AwayScore)
	}
}

func TestTrimClock(t *testing.T) {
	cases := map[string]string{
		"45'":  "45",
		" 90' ": "90",
		"12":   "12",
		"":     "",
	}
	for in, want := range cases {
		if got := trimClock(in); got != want {
			t.Errorf("trimClock(%q) = %q, want %q", in, got, want)
		}
	}
}
