package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/service"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// RatingHandler serves the vendor rating and benchmark endpoints.
type RatingHandler struct {
	svc service.RiskService
	log logger.Logger
}

// NewRatingHandler creates a RatingHandler.
func NewRatingHandler(svc service.RiskService, log logger.Logger) *RatingHandler {
	return &RatingHandler{svc: svc, log: log.WithComponent("rating_handler")}
}

// ComputeRating handles POST /api/v1/vendors/:vendor_id/rating.
func (h *RatingHandler) ComputeRating(c *gin.Context) {
	rating, err := h.svc.ComputeRating(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, rating)
}

// GetRating handles GET /api/v1/vendors/:vendor_id/rating.
func (h *RatingHandler) GetRating(c *gin.Context) {
	rating, err := h.svc.GetRating(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, rating)
}

// GetBenchmark handles GET /api/v1/vendors/:vendor_id/benchmark.
func (h *RatingHandler) GetBenchmark(c *gin.Context) {
	benchmark, err := h.svc.Benchmark(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, benchmark)
}
