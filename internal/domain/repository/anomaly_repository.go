package repository

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// AnomalyRepository appends detected anomalies. Anomalies are write-once
// facts; there is no update or delete path.
type AnomalyRepository interface {
	SaveAnomalies(ctx context.Context, anomalies []models.AnomalyDetection) error
}
