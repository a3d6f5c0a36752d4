package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// vendorRatingDBM is the database model for the vendor_ratings table. One row
// per vendor; recomputation overwrites in place.
type vendorRatingDBM struct {
	VendorID             string `gorm:"primaryKey"`
	OverallRating        float64
	AssessmentScore      float64
	ComplianceScore      float64
	ResponseTimeScore    float64
	CompletionRate       float64
	SecurityPostureScore float64
	CalculatedAt         time.Time
}

func (vendorRatingDBM) TableName() string { return "vendor_ratings" }

func (dbm *vendorRatingDBM) toDomain(weights models.RatingWeights) *models.VendorRating {
	return &models.VendorRating{
		VendorID:             dbm.VendorID,
		OverallRating:        dbm.OverallRating,
		AssessmentScore:      dbm.AssessmentScore,
		ComplianceScore:      dbm.ComplianceScore,
		ResponseTimeScore:    dbm.ResponseTimeScore,
		CompletionRate:       dbm.CompletionRate,
		SecurityPostureScore: dbm.SecurityPostureScore,
		Weights:              weights,
		CalculatedAt:         dbm.CalculatedAt,
	}
}

func fromRating(rating *models.VendorRating) *vendorRatingDBM {
	return &vendorRatingDBM{
		VendorID:             rating.VendorID,
		OverallRating:        rating.OverallRating,
		AssessmentScore:      rating.AssessmentScore,
		ComplianceScore:      rating.ComplianceScore,
		ResponseTimeScore:    rating.ResponseTimeScore,
		CompletionRate:       rating.CompletionRate,
		SecurityPostureScore: rating.SecurityPostureScore,
		CalculatedAt:         rating.CalculatedAt,
	}
}

// RatingRepository is the PostgreSQL implementation of
// repository.RatingRepository.
type RatingRepository struct {
	db      *gorm.DB
	weights models.RatingWeights
}

// NewRatingRepository creates a RatingRepository. The weights are attached to
// loaded ratings so callers see the scheme a stored rating was computed under.
func NewRatingRepository(db *gorm.DB, weights models.RatingWeights) repository.RatingRepository {
	return &RatingRepository{db: db, weights: weights}
}

// GetVendorRating returns (nil, nil) when no rating exists for the vendor.
func (r *RatingRepository) GetVendorRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	var dbm vendorRatingDBM
	if err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&dbm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dbm.toDomain(r.weights), nil
}

// UpsertVendorRating inserts or replaces the rating row. Concurrent upserts
// for the same vendor resolve last-write-wins, which is acceptable because
// the recompute is deterministic from current history.
func (r *RatingRepository) UpsertVendorRating(ctx context.Context, rating *models.VendorRating) error {
	dbm := fromRating(rating)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vendor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_rating", "assessment_score", "compliance_score",
			"response_time_score", "completion_rate", "security_posture_score",
			"calculated_at",
		}),
	}).Create(dbm).Error
}

// ListByIndustry returns the overall ratings of approved vendors in the
// given industry.
func (r *RatingRepository) ListByIndustry(ctx context.Context, industry string) ([]float64, error) {
	var ratings []float64
	err := r.db.WithContext(ctx).
		Model(&vendorRatingDBM{}).
		Joins("JOIN vendors ON vendors.id = vendor_ratings.vendor_id").
		Where("vendors.industry = ? AND vendors.status = ?", industry, "approved").
		Pluck("vendor_ratings.overall_rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
