package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/monitoring"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/ratelimit"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// RateLimit throttles a route group per client IP. A limiter failure falls
// back to the limiter's local bucket, so the middleware itself never errors.
func RateLimit(limiter ratelimit.Limiter, scope constants.RateLimitScope, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			log.Warn(c.Request.Context(), "rate limit check errored, allowing request", logger.Fields{
				"scope": string(scope),
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if !allowed {
			metrics.RecordRateLimitHit(scope)
			dto.SendError(c, errors.ErrRateLimitExceeded(scope))
			return
		}
		c.Next()
	}
}
