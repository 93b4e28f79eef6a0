package live

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/models"
	"github.com/Vodeneev/livescores/internal/source"
)

// Sink is the session-side contract the formatter needs: something that
// accepts a full replacement of the live matches list.
type Sink interface {
	SetLiveMatches([]models.DisplayMatch)
}

// Formatter fetches raw live matches from a source and reshapes them into
// the fixed display schema the UI renders. Display records are recomputed
// from scratch on every call; nothing is retained between calls.
type Formatter struct {
	src source.Source
	now func() time.Time
}

func NewFormatter(src source.Source) *Formatter {
	return &Formatter{src: src, now: time.Now}
}

// UpdateLiveMatches fetches, formats and stores the current live matches.
//
// On success the session's live matches list is fully replaced (with an
// empty list when nothing is live) and the new list is returned.
//
// On retrieval failure the session is left untouched, the error is logged
// and returned alongside an empty list. Callers that only look at the list
// see the legacy behavior (empty on failure); callers that check the error
// can tell "no live matches" apart from "retrieval failed".
func (f *Formatter) UpdateLiveMatches(ctx context.Context, sess Sink) ([]models.DisplayMatch, error) {
	raw, err := f.src.GetLiveMatches(ctx)
	if err != nil {
		slog.Error("Failed to fetch live matches", "source", f.src.GetName(), "error", err)
		return []models.DisplayMatch{}, fmt.Errorf("get live matches: %w", err)
	}

	matches := FormatMatches(raw, f.now())
	sess.SetLiveMatches(matches)

	slog.Info("Live matches updated", "source", f.src.GetName(), "count", len(matches))
	return matches, nil
}

// FormatMatches maps raw source records onto display records, in input
// order. IDs are 1-based positions; optional fields get their defaults here.
func FormatMatches(raw []models.RawMatch, now time.Time) []models.DisplayMatch {
	clock := now.Format("15:04")
	out := make([]models.DisplayMatch, 0, len(raw))
	for i, m := range raw {
		out = append(out, models.DisplayMatch{
			ID:     i + 1,
			Home:   m.HomeTeam,
			Away:   m.AwayTeam,
			League: m.League,
			Time:   clock,
			Status: models.StatusLive,
			Minute: m.Minute.Or("0") + "'",
			Score:  m.HomeScore.Or("0") + "-" + m.AwayScore.Or("0"),
		})
	}
	return out
}
