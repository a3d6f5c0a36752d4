package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/service"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// TrendHandler serves the trend analytics endpoint.
type TrendHandler struct {
	svc service.RiskService
	log logger.Logger
}

// NewTrendHandler creates a TrendHandler.
func NewTrendHandler(svc service.RiskService, log logger.Logger) *TrendHandler {
	return &TrendHandler{svc: svc, log: log.WithComponent("trend_handler")}
}

// GetTrends handles GET /api/v1/analytics/trends?org_id=&window=.
// The window defaults to 30d when absent.
func (h *TrendHandler) GetTrends(c *gin.Context) {
	var query dto.TrendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.SendError(c, errors.ErrValidation("invalid query parameters").WithCause(err))
		return
	}
	window := models.TrendWindow(query.Window)
	if query.Window == "" {
		window = models.Window30Days
	}

	report, err := h.svc.GetTrends(c.Request.Context(), query.OrgID, window)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, report)
}
