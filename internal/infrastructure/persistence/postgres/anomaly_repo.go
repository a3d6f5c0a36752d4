package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// anomalyDBM is the database model for the anomaly_detections table.
type anomalyDBM struct {
	ID               string `gorm:"primaryKey"`
	AnomalyType      string
	Severity         string
	Description      string
	Confidence       float64
	AffectedEntities stringList `gorm:"type:jsonb"`
	Recommendations  stringList `gorm:"type:jsonb"`
	DetectedAt       time.Time
}

func (anomalyDBM) TableName() string { return "anomaly_detections" }

func fromAnomaly(a models.AnomalyDetection) anomalyDBM {
	return anomalyDBM{
		ID:               a.ID,
		AnomalyType:      string(a.Type),
		Severity:         string(a.Severity),
		Description:      a.Description,
		Confidence:       a.Confidence,
		AffectedEntities: a.AffectedEntities,
		Recommendations:  a.Recommendations,
		DetectedAt:       a.DetectedAt,
	}
}

// AnomalyRepository is the PostgreSQL implementation of
// repository.AnomalyRepository. Rows are append-only facts.
type AnomalyRepository struct {
	db *gorm.DB
}

// NewAnomalyRepository creates an AnomalyRepository.
func NewAnomalyRepository(db *gorm.DB) repository.AnomalyRepository {
	return &AnomalyRepository{db: db}
}

// SaveAnomalies appends the detected anomalies in one batch.
func (r *AnomalyRepository) SaveAnomalies(ctx context.Context, anomalies []models.AnomalyDetection) error {
	if len(anomalies) == 0 {
		return nil
	}
	dbms := make([]anomalyDBM, 0, len(anomalies))
	for _, a := range anomalies {
		dbms = append(dbms, fromAnomaly(a))
	}
	return r.db.WithContext(ctx).Create(&dbms).Error
}
