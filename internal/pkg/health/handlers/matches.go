package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// GetMatchesFunc is a function type for getting the current live matches
type GetMatchesFunc func() []models.DisplayMatch

var getMatchesFunc GetMatchesFunc

// SetGetMatchesFunc sets the function to get the current live matches
func SetGetMatchesFunc(fn GetMatchesFunc) {
	getMatchesFunc = fn
}

// HandleMatches handles /matches endpoint: returns the session's live
// matches list as currently held, without triggering a refresh.
func HandleMatches(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	matches := []models.DisplayMatch{}
	if getMatchesFunc != nil {
		matches = getMatchesFunc()
	}

	duration := time.Since(startTime)
	w.Header().Set("X-Query-Duration", duration.String())
	w.Header().Set("X-Matches-Count", fmt.Sprintf("%d", len(matches)))

	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": matches,
		"meta": map[string]interface{}{
			"count":    len(matches),
			"duration": duration.String(),
		},
	}); err != nil {
		slog.Error("Failed to encode matches", "error", err)
		http.Error(w, fmt.Sprintf("Failed to encode matches: %v", err), http.StatusInternalServerError)
	}
}
