package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// RefreshFunc triggers one live matches refresh cycle
type RefreshFunc func(ctx context.Context) error

var (
	refreshFunc    RefreshFunc
	refreshTimeout = 60 * time.Second
)

// SetRefreshFunc sets the function that triggers a refresh cycle
func SetRefreshFunc(fn RefreshFunc, timeout time.Duration) {
	refreshFunc = fn
	if timeout > 0 {
		refreshTimeout = timeout
	}
}

// HandleRefresh handles /refresh endpoint
// Flow: request -> async refresh from the source (non-blocking) -> respond
// immediately; fresh data will be available on the next /matches request.
func HandleRefresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if refreshFunc == nil {
		http.Error(w, "refresh not available", http.StatusServiceUnavailable)
		return
	}

	// Separate context so the refresh survives the HTTP request ending.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := refreshFunc(ctx); err != nil {
			slog.Error("On-demand refresh failed", "error", err)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "refresh triggered",
	})
}
