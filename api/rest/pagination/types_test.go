package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 20},
		{"negative uses default", -5, 20},
		{"within range", 7, 7},
		{"clamped to max", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultParams(tt.limit, 20, 100).Limit)
		})
	}
}

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  int
	}{
		{"", 20},
		{"?limit=5", 5},
		{"?limit=abc", 20},
		{"?limit=1000", 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/history"+tt.query, nil)

			assert.Equal(t, tt.want, FromQuery(c, 20, 100).Limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	params := Params{Limit: 10}

	assert.True(t, NewMeta(params, 10).HasMore)
	assert.False(t, NewMeta(params, 3).HasMore)
	assert.Equal(t, 3, NewMeta(params, 3).Count)
}
