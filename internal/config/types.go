package config

import "time"

type Config struct {
	Port        string
	Environment string
	JWTSecret   string
	DatabaseURL string
	RedisURL    string

	AI      AIConfig
	Credits CreditsConfig
	Limits  LimitsConfig
	Media   MediaConfig

	CORSAllowedOrigins []string
}

// provider settings; the key is handed to the gateway client at construction
type AIConfig struct {
	Provider    string // "gateway" (OpenAI-compatible chat completions) or "gemini"
	GatewayURL  string
	APIKey      string
	ImageModel  string
	VisionModel string
	Timeout     time.Duration
}

type CreditsConfig struct {
	FreeMonthlyCredits   int
	EnforcePremiumStyles bool
}

type LimitsConfig struct {
	// ulule/limiter formatted rate, e.g. "20-M"
	Rate string
}

// S3 or S3-compatible object storage for history images
type MediaConfig struct {
	Bucket         string
	Region         string
	Endpoint       string
	PublicURL      string
	KeyPrefix      string
	ForcePathStyle bool
}

const (
	ProviderGateway = "gateway"
	ProviderGemini  = "gemini"
)
