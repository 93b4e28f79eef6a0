package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vodeneev/livescores/internal/live"
	"github.com/Vodeneev/livescores/internal/notify"
	pkgconfig "github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/pkg/health"
	"github.com/Vodeneev/livescores/internal/pkg/health/handlers"
	"github.com/Vodeneev/livescores/internal/pkg/logging"
	"github.com/Vodeneev/livescores/internal/pkg/storage"
	"github.com/Vodeneev/livescores/internal/session"
	"github.com/Vodeneev/livescores/internal/source"

	// Register all supported sources via init().
	_ "github.com/Vodeneev/livescores/internal/source/all"
)

const (
	defaultConfigPath = "configs/production.yaml"
	defaultSource     = "sample"
)

type config struct {
	configPath string
	runFor     time.Duration
	source     string // Override source.enabled from config (e.g. "espn")
}

func main() {
	if err := run(); err != nil {
		slog.Error("Live service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()
	slog.Info("Loading config", "path", cfg.configPath)

	appConfig, err := pkgconfig.Load(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	_, err = logging.SetupLogger(&appConfig.Logging, "live-service")
	if err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	}

	sourceName := appConfig.Source.Enabled
	if cfg.source != "" {
		sourceName = cfg.source
	}
	if sourceName == "" {
		sourceName = defaultSource
		slog.Info("source.enabled not set, using default", "source", sourceName)
	}

	src, err := source.Create(sourceName, appConfig)
	if err != nil {
		return err
	}
	slog.Info("Using live matches source", "source", src.GetName())

	ctx, cancel := createContext(cfg.runFor)
	defer cancel()
	setupSignalHandler(ctx, cancel)

	sess := session.New(appConfig.Session.ID)

	var sessionStore *session.RedisStore
	if appConfig.Session.RedisAddr != "" {
		sessionStore, err = session.NewRedisStore(
			appConfig.Session.RedisAddr,
			appConfig.Session.RedisPassword,
			appConfig.Session.RedisDB,
			appConfig.Session.TTL,
		)
		if err != nil {
			slog.Warn("Session persistence disabled", "error", err)
			sessionStore = nil
		} else {
			defer sessionStore.Close()
			restoreSession(ctx, sessionStore, sess)
		}
	}

	var snapshots *storage.PostgresSnapshotStorage
	if appConfig.Storage.PostgresDSN != "" {
		snapshots, err = storage.NewPostgresSnapshotStorage(&appConfig.Storage)
		if err != nil {
			slog.Warn("Snapshot storage disabled", "error", err)
			snapshots = nil
		} else {
			defer snapshots.Close()
			handlers.SetSnapshotsFunc(snapshots.RecentSnapshots)
		}
	}

	var notifier *notify.TelegramNotifier
	if appConfig.Notify.TelegramBotToken != "" && appConfig.Notify.TelegramChatID != 0 {
		notifier = notify.NewTelegramNotifier(appConfig.Notify.TelegramBotToken, appConfig.Notify.TelegramChatID)
		if notifier != nil {
			defer notifier.Close()
		}
	}

	formatter := live.NewFormatter(src)

	refreshTimeout := appConfig.Refresh.Timeout
	if refreshTimeout <= 0 {
		refreshTimeout = 60 * time.Second
	}

	refresh := func(refreshCtx context.Context) error {
		matches, err := formatter.UpdateLiveMatches(refreshCtx, sess)
		if err != nil {
			return err
		}
		if sessionStore != nil {
			if err := sessionStore.Save(refreshCtx, sess); err != nil {
				slog.Warn("Failed to persist session", "error", err)
			}
		}
		if snapshots != nil {
			if err := snapshots.SaveSnapshot(refreshCtx, time.Now(), matches); err != nil {
				slog.Warn("Failed to save snapshot", "error", err)
			}
		}
		notifier.NotifyRefresh(matches)
		return nil
	}

	handlers.SetGetMatchesFunc(sess.LiveMatches)
	handlers.SetRefreshFunc(refresh, refreshTimeout)

	port := appConfig.Health.Port
	if port <= 0 {
		slog.Error("health.port must be specified in config")
		os.Exit(1)
	}
	health.Run(ctx, health.AddrFor(port), "live-service", appConfig.Health.ReadHeaderTimeout)

	runRefreshLoop(ctx, refresh, appConfig.Refresh.Interval, refreshTimeout)

	<-ctx.Done()
	slog.Info("Live service stopped gracefully")
	return nil
}

func parseFlags() config {
	var cfg config

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&cfg.configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.DurationVar(&cfg.runFor, "run-for", 0, "Auto-stop after duration (e.g. 10s, 1m). 0 = run until SIGINT/SIGTERM")
	flag.StringVar(&cfg.source, "source", "", "Override source.enabled: specify source name (e.g. 'espn' or 'sample'). Empty = use config")
	flag.Parse()
	return cfg
}

func createContext(runFor time.Duration) (context.Context, context.CancelFunc) {
	if runFor > 0 {
		return context.WithTimeout(context.Background(), runFor)
	}
	return context.WithCancel(context.Background())
}

func setupSignalHandler(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("Received shutdown signal, stopping service...", "signal", sig.String())
			cancel()
		case <-ctx.Done():
			signal.Stop(sigChan)
			close(sigChan)
		}
	}()
}

func restoreSession(ctx context.Context, store *session.RedisStore, sess *session.Session) {
	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	state, found, err := store.Load(loadCtx, sess.ID())
	if err != nil {
		slog.Warn("Failed to load persisted session", "error", err)
		return
	}
	if !found {
		return
	}
	sess.Restore(state)
	slog.Info("Restored session from Redis", "session_id", sess.ID(), "matches", len(state.LiveMatches), "updated_at", state.UpdatedAt)
}

func runRefreshLoop(ctx context.Context, refresh func(context.Context) error, interval, timeout time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Minute
		slog.Info("refresh.interval not set, using default", "interval", interval)
	} else {
		slog.Info("Starting periodic refresh", "interval", interval)
	}

	runOnce := func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := refresh(refreshCtx); err != nil {
			slog.Error("Periodic refresh failed", "error", err)
		}
	}

	// First refresh right away so /matches has data before the first tick.
	go func() {
		runOnce()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("Stopping periodic refresh...")
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
