package main

import (
	"codeberg.org/roomrevive/server/internal/analysis"
	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/internal/config"
	"codeberg.org/roomrevive/server/internal/gateway"
	"codeberg.org/roomrevive/server/internal/ratelimit"
	"codeberg.org/roomrevive/server/internal/redesign"
	"codeberg.org/roomrevive/server/roomrevive/credits"
	"codeberg.org/roomrevive/server/roomrevive/history"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool // nil when running on in-memory stores
	redis    *redis.Client // nil when rate limits are kept in process
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the domain services handlers depend on
type Services struct {
	Verifier    *auth.Verifier
	Gateway     gateway.Client
	Credits     *credits.Gate
	Redesigner  *redesign.Orchestrator
	Analyzer    *analysis.Analyzer
	History     *history.Service
	RateLimiter *ratelimit.Limiter
}
