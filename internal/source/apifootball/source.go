package apifootball

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/models"
	"github.com/Vodeneev/livescores/internal/source"
)

const sourceName = "apifootball"

func init() {
	source.Register(sourceName, func(cfg *config.Config) source.Source {
		return NewSource(cfg)
	})
}

// Source serves live matches from the API-Football service (RapidAPI).
type Source struct {
	client *Client
}

func NewSource(cfg *config.Config) *Source {
	c := &cfg.Source.APIFootball
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = cfg.Source.Timeout
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Source{
		client: NewClient(c.BaseURL, c.MirrorURL, c.APIKey, c.APIHost, cfg.Source.UserAgent, timeout),
	}
}

func (s *Source) GetName() string {
	return sourceName
}

func (s *Source) GetLiveMatches(ctx context.Context) ([]models.RawMatch, error) {
	start := time.Now()
	fixtures, err := s.client.GetLiveFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("get live fixtures: %w", err)
	}
	matches := toRawMatches(fixtures)
	slog.Info("API-Football: live fixtures fetched", "count", len(matches), "duration", time.Since(start))
	return matches, nil
}
