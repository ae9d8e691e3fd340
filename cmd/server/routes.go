package main

import (
	"codeberg.org/roomrevive/server/api/rest/analysis"
	"codeberg.org/roomrevive/server/api/rest/credits"
	"codeberg.org/roomrevive/server/api/rest/health"
	"codeberg.org/roomrevive/server/api/rest/history"
	"codeberg.org/roomrevive/server/api/rest/redesign"
	"codeberg.org/roomrevive/server/internal/auth"
	redesignsvc "codeberg.org/roomrevive/server/internal/redesign"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler(server.pingers()))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.GET("/ping", health.PingHandler)

	// everything below needs a verified identity; limits are keyed by it
	protected := v1.Group("")
	protected.Use(
		BodyLimitMiddleware(redesignsvc.MaxRequestBytes),
		auth.AuthMiddleware(server.services.Verifier),
		server.services.RateLimiter.Middleware(),
	)
	{
		redesign.RegisterRoutes(protected, server.services.Redesigner)
		analysis.RegisterRoutes(protected, server.services.Analyzer)
		credits.RegisterRoutes(protected, server.services.Credits)
		history.RegisterRoutes(protected, server.services.History)
	}
}
