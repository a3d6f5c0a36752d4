package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// predictionDBM is the database model for generated risk predictions.
type predictionDBM struct {
	ID                string `gorm:"primaryKey"`
	VendorID          string `gorm:"index"`
	RiskScore         int
	RiskLevel         string
	Confidence        float64
	Factors           []byte     `gorm:"type:jsonb"`
	Recommendations   stringList `gorm:"type:jsonb"`
	NextAssessmentDue time.Time
	GeneratedAt       time.Time
}

func (predictionDBM) TableName() string { return "risk_predictions" }

// PredictionRepository is the PostgreSQL implementation of
// repository.PredictionRepository.
type PredictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a PredictionRepository.
func NewPredictionRepository(db *gorm.DB) repository.PredictionRepository {
	return &PredictionRepository{db: db}
}

// SavePrediction records one generated prediction.
func (r *PredictionRepository) SavePrediction(ctx context.Context, prediction *models.RiskPrediction) error {
	factors, err := json.Marshal(prediction.Factors)
	if err != nil {
		return err
	}
	dbm := &predictionDBM{
		ID:                uuid.NewString(),
		VendorID:          prediction.VendorID,
		RiskScore:         prediction.RiskScore,
		RiskLevel:         string(prediction.RiskLevel),
		Confidence:        prediction.Confidence,
		Factors:           factors,
		Recommendations:   prediction.Recommendations,
		NextAssessmentDue: prediction.NextAssessmentDue,
		GeneratedAt:       prediction.GeneratedAt,
	}
	return r.db.WithContext(ctx).Create(dbm).Error
}
