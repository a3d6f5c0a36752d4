package repository

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// PredictionRepository stores generated risk predictions. Predictions are
// derived data; a save records the latest generation for audit purposes.
type PredictionRepository interface {
	SavePrediction(ctx context.Context, prediction *models.RiskPrediction) error
}
