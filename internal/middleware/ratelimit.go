package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit builds an in-memory rate limiting middleware allowing the given
// number of requests per minute per client IP.
func RateLimit(requestsPerMinute int64, logger *slog.Logger) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  requestsPerMinute,
	}
	store := memory.NewStore()
	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		logger.WarnContext(c.Request.Context(), "rate limit exceeded",
			slog.String("client_ip", c.ClientIP()),
			slog.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	}))
}
