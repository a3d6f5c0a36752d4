// Package handlers implements the HTTP handlers of the risk API.
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

// RiskHandler serves the scoring, prediction and anomaly endpoints.
type RiskHandler struct {
	svc service.RiskService
	log logger.Logger
}

// NewRiskHandler creates a RiskHandler.
func NewRiskHandler(svc service.RiskService, log logger.Logger) *RiskHandler {
	return &RiskHandler{svc: svc, log: log.WithComponent("risk_handler")}
}

// ComputeScore handles POST /api/v1/risk/score.
func (h *RiskHandler) ComputeScore(c *gin.Context) {
	var req dto.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("invalid request body").WithCause(err))
		return
	}

	assessment, err := h.svc.ComputeRiskScore(c.Request.Context(), req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusCreated, assessment)
}

// GetPrediction handles GET /api/v1/risk/predictions/:vendor_id.
func (h *RiskHandler) GetPrediction(c *gin.Context) {
	prediction, err := h.svc.PredictRisk(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, prediction)
}

// GetAnomalies handles GET /api/v1/risk/anomalies/:vendor_id.
func (h *RiskHandler) GetAnomalies(c *gin.Context) {
	anomalies, err := h.svc.DetectAnomalies(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	if anomalies == nil {
		anomalies = []models.AnomalyDetection{}
	}
	dto.SendSuccess(c, http.StatusOK, anomalies)
}
