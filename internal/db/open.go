package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Malotkya/CapstoneProject/internal/config"
	"github.com/Malotkya/CapstoneProject/internal/store"
	"github.com/Malotkya/CapstoneProject/internal/store/sqlite"
)

// Open returns the deck store selected by cfg: Postgres when DATABASE_URL is
// set, the embedded SQLite file otherwise.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.UsePostgres() {
		logger.Info("Connecting to database...")
		pool, err := New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		return pool, nil
	}

	logger.Info("Opening SQLite deck store", "path", cfg.SQLitePath)
	st, err := sqlite.Open(cfg.SQLitePath, logger)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return st, nil
}
