package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/steel-suvidha/marketplace-api/internal/api/shared/errors"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/metrics"
	"github.com/steel-suvidha/marketplace-api/internal/ratelimit"
)

// LoginRateLimit returns a gin middleware that throttles login attempts per client IP
func LoginRateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.Request.Context(), c.ClientIP())
		if allowed {
			c.Next()
			return
		}

		metrics.RecordLoginAttempt(metrics.LoginThrottled)
		logger.WarnCtx(c.Request.Context(), "Login attempt throttled",
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("retry_after", retryAfter),
		)

		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
		apiErr := apierrors.NewTooManyRequestsError("Too many login attempts, please try again later")
		c.AbortWithStatusJSON(apierrors.StatusOf(apiErr.Code), apiErr)
	}
}

func retryAfterSeconds(d time.Duration) int {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
