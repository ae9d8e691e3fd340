package main

import (
	"context"
	"fmt"

	"codeberg.org/roomrevive/server/internal/analysis"
	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/config"
	"codeberg.org/roomrevive/server/internal/gateway"
	"codeberg.org/roomrevive/server/internal/logger"
	"codeberg.org/roomrevive/server/internal/media"
	"codeberg.org/roomrevive/server/internal/ratelimit"
	"codeberg.org/roomrevive/server/internal/redesign"
	"codeberg.org/roomrevive/server/roomrevive/credits"
	"codeberg.org/roomrevive/server/roomrevive/history"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// creates and configures all service clients; db and rdb may be nil
func InitializeServices(ctx context.Context, cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client) (*Services, error) {
	client, err := gateway.New(ctx, cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI gateway client: %w", err)
	}

	uploader, err := media.NewUploader(ctx, media.Config{
		Bucket:         cfg.Media.Bucket,
		Region:         cfg.Media.Region,
		Endpoint:       cfg.Media.Endpoint,
		PublicURL:      cfg.Media.PublicURL,
		KeyPrefix:      cfg.Media.KeyPrefix,
		ForcePathStyle: cfg.Media.ForcePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media uploader: %w", err)
	}

	var (
		ledger credits.Ledger
		store  history.Store
	)

	if db != nil {
		ledger = credits.NewPostgresLedger(db, cfg.Credits.FreeMonthlyCredits)
		store = history.NewPostgresStore(db)
	} else {
		logger.Warn("DATABASE_URL not set, credits and history are kept in memory")
		ledger = credits.NewMemoryLedger(cfg.Credits.FreeMonthlyCredits)
		store = history.NewMemoryStore()
	}

	// a nil *redis.Client must not become a non-nil interface
	var limiterStore redis.UniversalClient
	if rdb != nil {
		limiterStore = rdb
	}

	limiter, err := ratelimit.New(cfg.Limits.Rate, limiterStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	gate := credits.NewGate(ledger)

	return &Services{
		Verifier: auth.NewVerifier(cfg.JWTSecret),
		Gateway:  client,
		Credits:  gate,
		Redesigner: redesign.NewOrchestrator(gate, client, redesign.Config{
			Timeout:              cfg.AI.Timeout,
			EnforcePremiumStyles: cfg.Credits.EnforcePremiumStyles,
		}),
		Analyzer:    analysis.NewAnalyzer(client, cfg.AI.Timeout),
		History:     history.NewService(store, uploader),
		RateLimiter: limiter,
	}, nil
}
