package espn

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/models"
	"github.com/Vodeneev/livescores/internal/source"
)

const sourceName = "espn"

func init() {
	source.Register(sourceName, func(cfg *config.Config) source.Source {
		return NewSource(cfg)
	})
}

// Source serves live matches from the ESPN site API. No API key needed,
// which makes it the default fallback when API-Football is not configured.
type Source struct {
	client  *Client
	leagues []string
}

func NewSource(cfg *config.Config) *Source {
	c := &cfg.Source.ESPN
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = cfg.Source.Timeout
	}
	leagues := c.Leagues
	if len(leagues) == 0 {
		leagues = defaultLeagues
	}
	return &Source{
		client:  NewClient(c.BaseURL, cfg.Source.UserAgent, timeout),
		leagues: leagues,
	}
}

func (s *Source) GetName() string {
	return sourceName
}

// GetLiveMatches walks the configured leagues in order. A single failing
// league aborts the whole fetch: a partial list would renumber the matches
// the UI already shows.
func (s *Source) GetLiveMatches(ctx context.Context) ([]models.RawMatch, error) {
	start := time.Now()
	out := make([]models.RawMatch, 0)
	for _, league := range s.leagues {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sb, err := s.client.GetScoreboard(ctx, league)
		if err != nil {
			return nil, err
		}
		out = append(out, liveMatches(sb)...)
	}
	slog.Info("ESPN: live matches fetched", "leagues", len(s.leagues), "count", len(out), "duration", time.Since(start))
	return out, nil
}
