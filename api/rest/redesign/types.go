package redesign

import (
	"context"

	"codeberg.org/roomrevive/server/internal/prompt"
	"codeberg.org/roomrevive/server/internal/redesign"
)

// Request represents the request body for a room redesign
type Request struct {
	Image          string                 `json:"image"`
	Style          string                 `json:"style"`
	Customizations *prompt.Customizations `json:"customizations,omitempty"`
}

// Response represents a successful redesign
type Response struct {
	RedesignedImage string `json:"redesignedImage"`
	Message         string `json:"message"`
}

// satisfied by *redesign.Orchestrator
type Redesigner interface {
	Redesign(ctx context.Context, req redesign.Request) (*redesign.Result, error)
}
