package gateway

import (
	"context"
	"fmt"

	"codeberg.org/roomrevive/server/internal/config"
)

// builds the client for the configured provider
func New(ctx context.Context, cfg config.AIConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderGateway:
		return NewChatCompletionsClient(ChatConfig{
			URL:               cfg.GatewayURL,
			APIKey:            cfg.APIKey,
			ImageModel:        cfg.ImageModel,
			VisionModel:       cfg.VisionModel,
			RequestsPerSecond: 10,
			Burst:             10,
		}), nil
	case config.ProviderGemini:
		return NewGenAIClient(ctx, GenAIConfig{
			APIKey:      cfg.APIKey,
			ImageModel:  cfg.ImageModel,
			VisionModel: cfg.VisionModel,
		})
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
