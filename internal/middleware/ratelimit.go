package middleware

import (
	"context"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tpoportal/internal/app/models/dto"
	"github.com/yigit/tpoportal/internal/pkg/logger"
	"github.com/yigit/tpoportal/internal/pkg/metrics"
)

// Limiter decides whether one more request for key is allowed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// WindowCounter is a shared fixed-window counter, e.g. Redis INCR
type WindowCounter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// CounterLimiter allows perMinute hits per key using a shared counter
type CounterLimiter struct {
	counter   WindowCounter
	perMinute int
}

// NewCounterLimiter creates a limiter backed by counter
func NewCounterLimiter(counter WindowCounter, perMinute int) *CounterLimiter {
	return &CounterLimiter{counter: counter, perMinute: perMinute}
}

// Allow implements Limiter
func (l *CounterLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.counter.Allow(ctx, key, l.perMinute, time.Minute)
}

// TokenBucket is an in-process per-key token bucket, used when no shared
// counter is configured.
type TokenBucket struct {
	capacity float64
	rate     float64 // tokens per second
	now      func() time.Time

	mu    sync.Mutex
	state map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket allows bursts of capacity refilled at perMinute tokens per minute
func NewTokenBucket(capacity, perMinute int) *TokenBucket {
	return &TokenBucket{
		capacity: float64(capacity),
		rate:     float64(perMinute) / 60.0,
		now:      time.Now,
		state:    make(map[string]*bucket),
	}
}

// Allow implements Limiter
func (tb *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	now := tb.now()

	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.state[key]
	if !ok {
		tb.state[key] = &bucket{tokens: tb.capacity - 1, last: now}
		return true, nil
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = math.Min(tb.capacity, b.tokens+elapsed*tb.rate)
	b.last = now
	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// RateLimit rejects requests over the limit with 429, keyed per client IP and
// route. Limiter failures let the request through.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		key := route + "|" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn().Err(err).Str("route", route).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimited.WithLabelValues(route).Inc()
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests, please try again later")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
