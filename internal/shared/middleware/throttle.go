package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/logger"
)

const throttleWindow = time.Hour

// ThrottleStore is the counter backend (redis in production). Incr must be
// atomic and start the window on first use.
type ThrottleStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Throttle limits requests per client IP to limitPerHour within a fixed
// one-hour window. Scope keeps the contact-form and registration counters
// separate. A store outage fails open: throttling protects against spam, it
// must not take the endpoint down with it.
func Throttle(store ThrottleStore, scope string, limitPerHour int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("throttle:%s:%s", scope, c.ClientIP())

		count, err := store.Incr(c.Request.Context(), key, throttleWindow)
		if err != nil {
			logger.Warn("throttle store unavailable", err)
			c.Next()
			return
		}

		if count > int64(limitPerHour) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(throttleWindow.Seconds())))
			response.TooManyRequests(c, "request was throttled, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
