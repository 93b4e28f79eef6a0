package espn

import (
	"strings"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// liveMatches picks the in-progress events from a scoreboard and maps them
// onto the loose source records.
func liveMatches(sb *scoreboardResponse) []models.RawMatch {
	leagueName := ""
	if len(sb.Leagues) > 0 {
		leagueName = sb.Leagues[0].Name
	}

	var out []models.RawMatch
	for _, ev := range sb.Events {
		if ev.Status.Type.State != "in" {
			continue
		}
		if len(ev.Competitions) == 0 {
			continue
		}

		raw := models.RawMatch{
			League: leagueName,
			Minute: models.FlexString(trimClock(ev.Status.DisplayClock)),
		}
		for _, comp := range ev.Competitions[0].Competitors {
			switch comp.HomeAway {
			case "home":
				raw.HomeTeam = comp.Team.DisplayName
				raw.HomeScore = models.FlexString(comp.Score)
			case "away":
				raw.AwayTeam = comp.Team.DisplayName
				raw.AwayScore = models.FlexString(comp.Score)
			}
		}
		out = append(out, raw)
	}
	return out
}

// trimClock strips the apostrophe from ESPN's display clock ("45'" -> "45");
// the formatter adds it back for every source uniformly.
func trimClock(clock string) string {
	return strings.TrimSuffix(strings.TrimSpace(clock), "'")
}
