package service

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// RiskService is the application-facing contract consumed by the transport
// layer.
type RiskService interface {
	ComputeRiskScore(ctx context.Context, req dto.ScoreRequest) (*models.RiskAssessment, error)
	PredictRisk(ctx context.Context, vendorID string) (*models.RiskPrediction, error)
	DetectAnomalies(ctx context.Context, vendorID string) ([]models.AnomalyDetection, error)
	ComputeRating(ctx context.Context, vendorID string) (*models.VendorRating, error)
	GetRating(ctx context.Context, vendorID string) (*models.VendorRating, error)
	Benchmark(ctx context.Context, vendorID string) (*models.IndustryBenchmark, error)
	GetTrends(ctx context.Context, orgID string, window models.TrendWindow) (*models.TrendReport, error)
}

var _ RiskService = (*RiskAppService)(nil)
