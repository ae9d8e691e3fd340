package ratelimit

import (
	"fmt"
	"strconv"
	"time"

	"codeberg.org/roomrevive/server/internal/errors"
	"codeberg.org/roomrevive/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const storePrefix = "roomrevive:ratelimit"

// per-identity request limiter backed by redis when available
type Limiter struct {
	limiter *limiter.Limiter
}

// rate is in ulule's formatted notation, e.g. "20-M"; a nil client keeps
// counters in process memory
func New(rate string, client redis.UniversalClient) (*Limiter, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:          storePrefix,
			CleanUpInterval: time.Minute,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          storePrefix,
			CleanUpInterval: time.Minute,
		})
	}

	return &Limiter{limiter: limiter.New(store, parsed)}, nil
}

// must run after auth so the identity is available; anonymous callers are keyed by IP
func (l *Limiter) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(l.limiter,
		mgin.WithKeyGetter(Key),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "key", Key(c))

			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(c)))
			errors.TooManyRequests(c, "Too many requests. Please slow down.")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a broken store must not take the API down
			logger.FromContext(c.Request.Context()).Error("rate limiter store failed", "error", err)
			c.Next()
		}),
	)
}

func Key(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "user:" + userID
	}

	return "ip:" + c.ClientIP()
}

// the middleware sets X-RateLimit-Reset before calling the reached handler
func retryAfterSeconds(c *gin.Context) int {
	reset, err := strconv.ParseInt(c.Writer.Header().Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return 60
	}

	seconds := int(time.Until(time.Unix(reset, 0)).Seconds())
	if seconds < 1 {
		return 1
	}

	return seconds
}
