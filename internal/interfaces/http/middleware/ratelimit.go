package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tag/internal/infrastructure/ratelimit"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

// RateLimiter limits requests per client IP within a sliding window.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	prefix  string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

// NewRateLimiter returns a limiter keyed by prefix and client IP. A nil
// limiter lets every request through.
func NewRateLimiter(limiter ratelimit.RateLimiter, prefix string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		prefix:  prefix,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := rl.prefix + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit, rl.window)
		if err != nil {
			// Redis trouble must not lock everybody out.
			rl.logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Trop de tentatives, veuillez réessayer plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
