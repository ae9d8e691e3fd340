package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomrevive_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomrevive_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
	}, []string{"method", "route"})

	// outcome is the failure kind, or "Succeeded"
	RedesignOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomrevive_redesign_outcomes_total",
		Help: "Redesign attempts by outcome",
	}, []string{"outcome"})

	AnalysisOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomrevive_analysis_outcomes_total",
		Help: "Room analysis attempts by outcome",
	}, []string{"outcome"})

	CreditRefunds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomrevive_credit_refunds_total",
		Help: "Credit refunds by result",
	}, []string{"result"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomrevive_provider_call_duration_seconds",
		Help:    "Generation gateway call latency",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90, 120},
	}, []string{"operation"})
)

// records request counts and latency per matched route
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func ObserveProvider(operation string, started time.Time) {
	ProviderLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
