package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/roomrevive/server/api/rest/health"
	"codeberg.org/roomrevive/server/internal/config"
	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/logger"
	"codeberg.org/roomrevive/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	rdb, err := openRedis(ctx, cfg.RedisURL)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	services, err := InitializeServices(ctx, cfg, db, rdb)
	if err != nil {
		if rdb != nil {
			rdb.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.GinMiddleware(), metrics.GinMiddleware(), errors.Recovery())

	server := &Server{
		db:       db,
		redis:    rdb,
		config:   cfg,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	logger.Info("server initialized",
		"ai_provider", cfg.AI.Provider,
		"database", db != nil,
		"redis", rdb != nil,
		"premium_gating", cfg.Credits.EnforcePremiumStyles,
	)

	return server, nil
}

// returns nil without a connection string; the service then runs on memory stores
func openDatabase(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, nil
	}

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// supabase's pooler has few connections; keep ours small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode does not support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close() //nolint:errcheck,gosec // best-effort cleanup
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// dependencies reported by /health
func (s *Server) pingers() map[string]health.Pinger {
	pingers := map[string]health.Pinger{}

	if s.db != nil {
		pingers["database"] = s.db
	}

	if s.redis != nil {
		rdb := s.redis
		pingers["redis"] = health.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	return pingers
}

// releases pools; safe to call when running on memory stores
func (s *Server) Close() {
	if s.redis != nil {
		s.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.db != nil {
		s.db.Close()
	}
}
