package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/roomrevive/server/internal/config"
	"codeberg.org/roomrevive/server/internal/redesign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(gatewayURL string) *config.Config {
	return &config.Config{
		Port:        "0",
		Environment: "test",
		JWTSecret:   "test-secret",
		AI: config.AIConfig{
			Provider:    config.ProviderGateway,
			GatewayURL:  gatewayURL,
			APIKey:      "test-key",
			ImageModel:  "image-model",
			VisionModel: "vision-model",
			Timeout:     5 * time.Second,
		},
		Credits: config.CreditsConfig{
			FreeMonthlyCredits:   1,
			EnforcePremiumStyles: true,
		},
		Limits:             config.LimitsConfig{Rate: "100-M"},
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestServer(t *testing.T, gatewayURL string) (*Server, string) {
	t.Helper()

	srv, err := NewServer(testConfig(gatewayURL))
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	token, err := srv.services.Verifier.Issue("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)

	return srv, token
}

func request(srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _ := newTestServer(t, "http://127.0.0.1:1")

	w := request(srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "roomrevive")

	w = request(srv, http.MethodGet, "/api/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(srv, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_ProtectedRoutesNeedToken(t *testing.T) {
	srv, _ := newTestServer(t, "http://127.0.0.1:1")

	for _, path := range []string{"/api/v1/credits", "/api/v1/history"} {
		w := request(srv, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := request(srv, http.MethodPost, "/api/v1/redesign", "", `{"image":"data:image/png;base64,AAAA","style":"modern"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_RedesignConsumesCreditEndToEnd(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Here's your refreshed room","images":[{"type":"image_url","image_url":{"url":"data:image/png;base64,QUJD"}}]}}]}`))
	}))
	defer provider.Close()

	srv, token := newTestServer(t, provider.URL)

	w := request(srv, http.MethodPost, "/api/v1/redesign", token, `{"image":"data:image/png;base64,AAAA","style":"modern"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		RedesignedImage string `json:"redesignedImage"`
		Message         string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "data:image/png;base64,QUJD", resp.RedesignedImage)

	w = request(srv, http.MethodGet, "/api/v1/credits", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var balance struct {
		CreditsRemaining int `json:"creditsRemaining"`
		TotalRedesigns   int `json:"totalRedesigns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, 0, balance.CreditsRemaining)
	assert.Equal(t, 1, balance.TotalRedesigns)

	// the single free credit is gone
	w = request(srv, http.MethodPost, "/api/v1/redesign", token, `{"image":"data:image/png;base64,AAAA","style":"modern"}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "credits_exhausted")
}

func TestServer_OversizedBodiesRejectedBeforeLedger(t *testing.T) {
	srv, token := newTestServer(t, "http://127.0.0.1:1")
	huge := strings.Repeat("A", redesign.MaxRequestBytes)

	tests := []struct {
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"/api/v1/redesign", `{"style":"modern","image":"data:image/png;base64,` + huge + `"}`, http.StatusBadRequest, "image_too_large"},
		{"/api/v1/analyze", `{"image":"data:image/png;base64,` + huge + `"}`, http.StatusBadRequest, "image_too_large"},
		{"/api/v1/history", `{"original_image_url":"` + huge + `"}`, http.StatusRequestEntityTooLarge, "payload_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := request(srv, http.MethodPost, tt.path, token, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"`+tt.wantCode+`"`)
		})
	}

	w := request(srv, http.MethodGet, "/api/v1/credits", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"creditsRemaining":1`)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/redesign", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
