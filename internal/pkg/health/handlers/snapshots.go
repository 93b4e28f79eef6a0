package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Vodeneev/livescores/internal/pkg/storage"
)

// SnapshotsFunc reads back persisted live match snapshot rows, newest first
type SnapshotsFunc func(ctx context.Context, limit int) ([]storage.SnapshotRow, error)

var snapshotsFunc SnapshotsFunc

// SetSnapshotsFunc sets the function that queries persisted snapshots
func SetSnapshotsFunc(fn SnapshotsFunc) {
	snapshotsFunc = fn
}

// HandleSnapshots handles /snapshots endpoint: returns the most recent
// persisted live match rows. ?limit=N caps the row count; 0 or absent uses
// the storage default.
func HandleSnapshots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if snapshotsFunc == nil {
		http.Error(w, "snapshot storage not available", http.StatusServiceUnavailable)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := snapshotsFunc(ctx, limit)
	if err != nil {
		slog.Error("Failed to query snapshots", "error", err)
		http.Error(w, fmt.Sprintf("Failed to query snapshots: %v", err), http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []storage.SnapshotRow{}
	}

	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"snapshots": rows,
		"meta": map[string]interface{}{
			"count": len(rows),
		},
	}); err != nil {
		slog.Error("Failed to encode snapshots", "error", err)
	}
}
