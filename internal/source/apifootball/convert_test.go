package apifootball

import (
	"encoding/json"
	"testing"
)

const fixturesPayload = `{
  "response": [
    {
      "fixture": {"id": 101, "status": {"long": "Second Half", "short": "2H", "elapsed": 67}},
      "teams": {"home": {"id": 1, "name": "Liverpool"}, "away": {"id": 2, "name": "Arsenal"}},
      "goals": {"home": 2, "away": 1},
      "league": {"id": 39, "name": "Premier League", "country": "England"}
    },
    {
      "fixture": {"id": 102, "status": {"long": "Halftime", "short": "HT", "elapsed": null}},
      "teams": {"home": {"id": 3, "name": "PSG"}, "away": {"id": 4, "name": "Lyon"}},
      "goals": {"home": null, "away": null},
      "league": {"id": 61, "name": "Ligue 1", "country": "France"}
    }
  ]
}`

func TestToRawMatches(t *testing.T) {
	var resp fixturesResponse
	if err := json.Unmarshal([]byte(fixturesPayload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out := toRawMatches(resp.Response)
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}

	first := out[0]
	if first.HomeTeam != "Liverpool" || first.AwayTeam != "Arsenal" {
		t.Errorf("teams: %s vs %s", first.HomeTeam, first.AwayTeam)
	}
	if first.League != "Premier League" {
		t.Errorf("league = %q", first.League)
	}
	if first.Minute != "67" {
		t.Errorf("minute = %q, want 67", first.Minute)
	}
	if first.HomeScore != "2" || first.AwayScore != "1" {
		t.Errorf("score = %s-%s, want 2-1", first.HomeScore, first.AwayScore)
	}

	// Null elapsed/goals stay empty so formatting applies defaults.
	second := out[1]
	if second.Minute != "" || second.HomeScore != "" || second.AwayScore != "" {
		t.Errorf("null fields should stay empty: %+v", second)
	}
}

func TestToRawMatchesEmpty(t *testing.T) {
	if out := toRawMatches(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}
