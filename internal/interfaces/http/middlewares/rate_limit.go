package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moura95/passmeter/internal/interfaces/http/ginx"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// RateLimiter is a single token bucket shared by every request that passes through it.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginx.ErrorResponse("middleware: rate limit exceeded"))
			return
		}
		c.Next()
	}
}
