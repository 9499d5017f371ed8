package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"runes-gateway/internal/client/satsterminal"
	"runes-gateway/internal/infra/db"
	"runes-gateway/internal/infra/repository"
	"runes-gateway/internal/pkg/config"

	"github.com/joho/godotenv"
)

// popular-refresh is meant to run on a schedule (cron or similar). It pulls
// the aggregator's popular token list into the cache table the API serves
// from, keeping a short history and recording failed attempts.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	popular := repository.NewPopularRunesRepository(pool)
	client := satsterminal.NewClient(cfg.SatsTerminal)

	raw, err := client.PopularTokens(ctx)
	if err != nil {
		logger.Error("failed to fetch popular tokens", "error", err)
		if markErr := popular.MarkRefreshAttempt(ctx); markErr != nil {
			logger.Error("failed to record refresh attempt", "error", markErr)
		}
		os.Exit(1)
	}

	if err := popular.Insert(ctx, raw); err != nil {
		logger.Error("failed to store popular tokens", "error", err)
		os.Exit(1)
	}

	pruned, err := popular.Prune(ctx, cfg.Cache.PopularKeep)
	if err != nil {
		logger.Error("failed to prune popular token history", "error", err)
		os.Exit(1)
	}

	logger.Info("popular tokens refreshed", "pruned", pruned)
}
