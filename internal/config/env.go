package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultGatewayURL        = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultGatewayImageModel = "google/gemini-2.5-flash-image-preview"
	defaultGatewayVision     = "google/gemini-2.5-flash"
	defaultGeminiImageModel  = "gemini-2.5-flash-image"
	defaultGeminiVision      = "gemini-2.5-flash"
	defaultAITimeout         = 90 * time.Second
	defaultFreeCredits       = 3
	defaultRate              = "20-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromEnv()
}

// builds the config from the current process environment
func FromEnv() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	environment := getenv("ENVIRONMENT", "development")

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	freeCredits := getenvInt("FREE_MONTHLY_CREDITS", defaultFreeCredits)
	if freeCredits <= 0 {
		return nil, fmt.Errorf("FREE_MONTHLY_CREDITS must be positive, got %d", freeCredits)
	}

	return &Config{
		Port:        getenv("PORT", defaultPort),
		Environment: environment,
		JWTSecret:   jwtSecret,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		AI:          ai,
		Credits: CreditsConfig{
			FreeMonthlyCredits:   freeCredits,
			EnforcePremiumStyles: getenvBool("ENFORCE_PREMIUM_STYLES", true),
		},
		Limits: LimitsConfig{
			Rate: getenv("RATE_LIMIT", defaultRate),
		},
		Media: MediaConfig{
			Bucket:         os.Getenv("S3_BUCKET"),
			Region:         os.Getenv("S3_REGION"),
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			PublicURL:      os.Getenv("S3_PUBLIC_URL"),
			KeyPrefix:      strings.Trim(os.Getenv("S3_KEY_PREFIX"), "/"),
			ForcePathStyle: getenvBool("S3_FORCE_PATH_STYLE", false),
		},
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}, nil
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getenv("AI_PROVIDER", ProviderGateway))
	timeout := time.Duration(getenvInt("AI_TIMEOUT_SECONDS", 0)) * time.Second
	if timeout <= 0 {
		timeout = defaultAITimeout
	}

	switch provider {
	case ProviderGateway:
		apiKey := os.Getenv("AI_GATEWAY_API_KEY")
		if apiKey == "" {
			return AIConfig{}, fmt.Errorf("AI_GATEWAY_API_KEY environment variable is required")
		}

		return AIConfig{
			Provider:    provider,
			GatewayURL:  getenv("AI_GATEWAY_URL", defaultGatewayURL),
			APIKey:      apiKey,
			ImageModel:  getenv("IMAGE_MODEL", defaultGatewayImageModel),
			VisionModel: getenv("VISION_MODEL", defaultGatewayVision),
			Timeout:     timeout,
		}, nil
	case ProviderGemini:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return AIConfig{}, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		return AIConfig{
			Provider:    provider,
			APIKey:      apiKey,
			ImageModel:  getenv("IMAGE_MODEL", defaultGeminiImageModel),
			VisionModel: getenv("VISION_MODEL", defaultGeminiVision),
			Timeout:     timeout,
		}, nil
	default:
		return AIConfig{}, fmt.Errorf("unsupported AI_PROVIDER: %s", provider)
	}
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
