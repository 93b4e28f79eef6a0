package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// PostgresSnapshotStorage persists one row per displayed match per refresh,
// giving a history of live scores for later analysis.
type PostgresSnapshotStorage struct {
	db *sql.DB
}

func NewPostgresSnapshotStorage(cfg *config.StorageConfig) (*PostgresSnapshotStorage, error) {
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	storage := &PostgresSnapshotStorage{db: db}

	if err := storage.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL snapshot storage initialized")
	return storage, nil
}

func (s *PostgresSnapshotStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS live_match_snapshots (
		id SERIAL PRIMARY KEY,
		taken_at TIMESTAMP NOT NULL,
		position INTEGER NOT NULL,
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		league VARCHAR(200) NOT NULL DEFAULT '',
		minute VARCHAR(10) NOT NULL,
		score VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_live_match_snapshots_taken_at ON live_match_snapshots(taken_at DESC);
	CREATE INDEX IF NOT EXISTS idx_live_match_snapshots_teams ON live_match_snapshots(home_team, away_team);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveSnapshot stores all matches of one refresh under a single timestamp.
func (s *PostgresSnapshotStorage) SaveSnapshot(ctx context.Context, takenAt time.Time, matches []models.DisplayMatch) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO live_match_snapshots (taken_at, position, home_team, away_team, league, minute, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		if _, err := stmt.ExecContext(ctx, takenAt, m.ID, m.Home, m.Away, m.League, m.Minute, m.Score); err != nil {
			return fmt.Errorf("insert snapshot row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Debug("Saved live match snapshot", "taken_at", takenAt, "matches", len(matches))
	return nil
}

// SnapshotRow is one persisted live match observation.
type SnapshotRow struct {
	TakenAt  time.Time `json:"taken_at"`
	Position int       `json:"position"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	League   string    `json:"league"`
	Minute   string    `json:"minute"`
	Score    string    `json:"score"`
}

// RecentSnapshots returns the most recent snapshot rows, newest first.
func (s *PostgresSnapshotStorage) RecentSnapshots(ctx context.Context, limit int) ([]SnapshotRow, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT taken_at, position, home_team, away_team, league, minute, score
		FROM live_match_snapshots
		ORDER BY taken_at DESC, position ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var r SnapshotRow
		if err := rows.Scan(&r.TakenAt, &r.Position, &r.HomeTeam, &r.AwayTeam, &r.League, &r.Minute, &r.Score); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database connection
func (s *PostgresSnapshotStorage) Close() error {
	return s.db.Close()
}
