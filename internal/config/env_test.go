package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_GATEWAY_API_KEY", "gw-key")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("PORT", "")
	t.Setenv("FREE_MONTHLY_CREDITS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGateway, cfg.AI.Provider)
	assert.Equal(t, "gw-key", cfg.AI.APIKey)
	assert.Equal(t, defaultGatewayURL, cfg.AI.GatewayURL)
	assert.Equal(t, 90*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 3, cfg.Credits.FreeMonthlyCredits)
	assert.True(t, cfg.Credits.EnforcePremiumStyles)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromEnv_GeminiProvider(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("IMAGE_MODEL", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "30")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, defaultGeminiImageModel, cfg.AI.ImageModel)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
}

func TestFromEnv_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_PROVIDER", "carrier-pigeon")

	_, err := FromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI_PROVIDER")
}

func TestFromEnv_InvalidFreeCredits(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_GATEWAY_API_KEY", "gw-key")
	t.Setenv("FREE_MONTHLY_CREDITS", "0")

	_, err := FromEnv()

	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, splitList(" https://a.dev , ,https://b.dev"))
}
