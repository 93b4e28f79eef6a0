package apifootball

import (
	"strconv"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// toRawMatches maps API-Football fixtures onto the loose source records.
// Absent elapsed/goals stay empty so downstream formatting applies defaults.
func toRawMatches(fixtures []fixtureEntry) []models.RawMatch {
	out := make([]models.RawMatch, 0, len(fixtures))
	for _, fx := range fixtures {
		raw := models.RawMatch{
			HomeTeam: fx.Teams.Home.Name,
			AwayTeam: fx.Teams.Away.Name,
			League:   fx.League.Name,
		}
		if fx.Fixture.Status.Elapsed != nil {
			raw.Minute = models.FlexString(strconv.Itoa(*fx.Fixture.Status.Elapsed))
		}
		if fx.Goals.Home != nil {
			raw.HomeScore = models.FlexString(strconv.Itoa(*fx.Goals.Home))
		}
		if fx.Goals.Away != nil {
			raw.AwayScore = models.FlexString(strconv.Itoa(*fx.Goals.Away))
		}
		out = append(out, raw)
	}
	return out
}
