package sample

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/models"
	"github.com/Vodeneev/livescores/internal/source"
)

const sourceName = "sample"

func init() {
	source.Register(sourceName, func(cfg *config.Config) source.Source {
		n := cfg.Source.Sample.Matches
		return NewSource(n)
	})
}

var sampleTeams = []string{
	"PSG", "Lyon", "Marseille",
	"Liverpool", "Arsenal", "Manchester City",
	"Real Madrid", "Barcelona", "Atletico Madrid",
	"Bayern Munich", "Borussia Dortmund", "RB Leipzig",
	"Inter", "Juventus", "Napoli",
}

var sampleLeagues = []string{
	"Ligue 1", "Premier League", "La Liga", "Bundesliga", "Serie A",
}

// Source generates simulated live matches. Used for demos and local runs
// when no real provider is configured.
type Source struct {
	count int
	rng   *rand.Rand
}

func NewSource(count int) *Source {
	if count <= 0 {
		count = 3
	}
	return &Source{
		count: count,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
}

func (s *Source) GetName() string {
	return sourceName
}

func (s *Source) GetLiveMatches(_ context.Context) ([]models.RawMatch, error) {
	out := make([]models.RawMatch, 0, s.count)
	for i := 0; i < s.count; i++ {
		home := s.rng.Intn(len(sampleTeams))
		away := s.rng.Intn(len(sampleTeams) - 1)
		if away >= home {
			away++ // never pair a team with itself
		}
		out = append(out, models.RawMatch{
			HomeTeam:  sampleTeams[home],
			AwayTeam:  sampleTeams[away],
			League:    sampleLeagues[s.rng.Intn(len(sampleLeagues))],
			Minute:    models.FlexString(strconv.Itoa(1 + s.rng.Intn(90))),
			HomeScore: models.FlexString(strconv.Itoa(s.rng.Intn(4))),
			AwayScore: models.FlexString(strconv.Itoa(s.rng.Intn(4))),
		})
	}
	return out, nil
}
