package middleware

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/TripMitra/trip-mitra-backend/errors"
	"github.com/TripMitra/trip-mitra-backend/services"
	"github.com/gin-gonic/gin"
)

// PlanRateLimiter limits plan-generation requests per client IP. Redis
// failures do not block requests; the limiter fails open so the planner
// stays available when Redis is down.
func PlanRateLimiter(limiter services.RateLimiterInterface, requestsPerWindow int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("plan:%s", getClientIP(c))

		allowed, remaining, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, requestsPerWindow, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			if retryAfter <= 0 {
				retryAfter = window
			}

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", requestsPerWindow))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(retryAfter).Unix()))
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))

			_ = c.Error(apperrors.RateLimitExceeded("Too many plan requests. Please try again later.", int(retryAfter.Seconds())))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", requestsPerWindow))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

		c.Next()
	}
}

// getClientIP extracts the real client IP, preferring proxy headers over
// the raw remote address.
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	return c.ClientIP()
}
