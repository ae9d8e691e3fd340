package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/roomrevive/server/internal/analysis"
	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/redesign"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, req analysis.Request) (*analysis.RoomAnalysis, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, req analysis.Request) (*analysis.RoomAnalysis, error) {
	return m.analyzeFunc(ctx, req)
}

func serve(t *testing.T, analyzer Analyzer, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	RegisterRoutes(r.Group("/api/v1"), analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHandler_Success(t *testing.T) {
	var gotUser string
	mock := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, req analysis.Request) (*analysis.RoomAnalysis, error) {
			gotUser = req.UserID
			return &analysis.RoomAnalysis{RoomType: "living room", Lighting: "bright"}, nil
		},
	}

	w := serve(t, mock, `{"image":"data:image/png;base64,AAAA"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUser)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, "living room", resp.Analysis.RoomType)
	assert.Equal(t, successMessage, resp.Message)
}

func TestHandler_ParseErrorCarriesRawResponse(t *testing.T) {
	mock := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, _ analysis.Request) (*analysis.RoomAnalysis, error) {
			return nil, &analysis.Failure{
				Failure:     &redesign.Failure{Kind: analysis.KindAnalysisParseError, Message: "Failed to parse room analysis. Please try again."},
				RawResponse: "not json at all",
			}
		},
	}

	w := serve(t, mock, `{"image":"data:image/png;base64,AAAA"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeAnalysisParseError, body.Code)
	assert.Equal(t, "not json at all", body.RawResponse)
}

func TestHandler_ProviderFailures(t *testing.T) {
	tests := []struct {
		name       string
		kind       redesign.Kind
		wantStatus int
	}{
		{"invalid image", redesign.KindInvalidImage, http.StatusBadRequest},
		{"rate limited", redesign.KindRateLimited, http.StatusTooManyRequests},
		{"quota", redesign.KindQuotaExceeded, http.StatusPaymentRequired},
		{"provider failure", redesign.KindProviderFailure, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAnalyzer{
				analyzeFunc: func(_ context.Context, _ analysis.Request) (*analysis.RoomAnalysis, error) {
					return nil, &analysis.Failure{Failure: &redesign.Failure{Kind: tt.kind, Message: "nope"}}
				},
			}

			w := serve(t, mock, `{"image":"data:image/png;base64,AAAA"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotContains(t, w.Body.String(), "rawResponse")
		})
	}
}

func TestHandler_NonStringImageIsInvalidImage(t *testing.T) {
	analyzer := &mockAnalyzer{analyzeFunc: func(context.Context, analysis.Request) (*analysis.RoomAnalysis, error) {
		t.Fatal("analyzer must not be called")
		return nil, nil
	}}

	w := serve(t, analyzer, `{"image":false}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"invalid_image"`)
}

func TestHandler_UnexpectedError(t *testing.T) {
	mock := &mockAnalyzer{
		analyzeFunc: func(_ context.Context, _ analysis.Request) (*analysis.RoomAnalysis, error) {
			return nil, stderrors.New("boom")
		},
	}

	w := serve(t, mock, `{"image":"data:image/png;base64,AAAA"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), errors.CodeServerError)
}
