package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// returns the server health status; each named pinger is checked with a short timeout
func Handler(pingers map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:  "healthy",
			Service: "roomrevive",
			Version: Version,
		}

		if len(pingers) > 0 {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			resp.Checks = make(map[string]string, len(pingers))
			for name, p := range pingers {
				if err := p.Ping(ctx); err != nil {
					resp.Checks[name] = "unreachable"
					resp.Status = "degraded"
					continue
				}
				resp.Checks[name] = "ok"
			}
		}

		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
