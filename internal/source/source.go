package source

import (
	"context"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// Source is a live matches retrieval capability. Implementations own their
// HTTP timeouts; callers pass a context for cancellation.
type Source interface {
	// GetName returns the source name
	GetName() string

	// GetLiveMatches fetches the matches currently being played.
	// May return an empty list when nothing is live.
	GetLiveMatches(ctx context.Context) ([]models.RawMatch, error)
}
