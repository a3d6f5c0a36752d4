package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// HealthChecker pings one dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks map[string]HealthChecker
	log    logger.Logger
}

// NewHealthHandler creates a HealthHandler over the named dependency checks.
func NewHealthHandler(checks map[string]HealthChecker, log logger.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, log: log.WithComponent("health")}
}

// Live handles GET /live. Process-up only, no dependency checks.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive", "service": constants.ServiceName})
}

// Ready handles GET /ready. Fails when any dependency is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(gin.H, len(h.checks))
	for name, check := range h.checks {
		if err := check.HealthCheck(ctx); err != nil {
			h.log.Warn(ctx, "readiness check failed", logger.Fields{
				"dependency": name,
				"error":      err.Error(),
			})
			results[name] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			results[name] = "ok"
		}
	}

	c.JSON(status, gin.H{
		"status":       statusWord(status),
		"service":      constants.ServiceName,
		"dependencies": results,
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ready"
	}
	return "degraded"
}
