package analysis

import (
	"context"

	"codeberg.org/roomrevive/server/internal/analysis"
)

// Request represents the request body for a room analysis
type Request struct {
	Image string `json:"image"`
}

// Response represents a successful analysis
type Response struct {
	Analysis *analysis.RoomAnalysis `json:"analysis"`
	Message  string                 `json:"message"`
}

// satisfied by *analysis.Analyzer
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.RoomAnalysis, error)
}
