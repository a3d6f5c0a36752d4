package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// assetDBM is the database model for the assets table.
type assetDBM struct {
	ID                     string `gorm:"primaryKey"`
	Name                   string
	Criticality            string
	BusinessImpact         string
	DataClassification     string
	ComplianceRequirements stringList `gorm:"type:jsonb"`
	SecurityControls       stringList `gorm:"type:jsonb"`
}

func (assetDBM) TableName() string { return "assets" }

func (dbm *assetDBM) toDomain() *models.AssetProfile {
	return &models.AssetProfile{
		ID:                     dbm.ID,
		Name:                   dbm.Name,
		Criticality:            dbm.Criticality,
		BusinessImpact:         dbm.BusinessImpact,
		DataClassification:     dbm.DataClassification,
		ComplianceRequirements: dbm.ComplianceRequirements,
		SecurityControls:       dbm.SecurityControls,
	}
}

// vendorDBM is the database model for the vendors table.
type vendorDBM struct {
	ID                   string `gorm:"primaryKey"`
	Name                 string
	Industry             string
	Status               string
	ComplianceStatus     string
	OverallRiskScore     float64
	OverallRating        float64
	SecurityPostureScore *float64
	UpdatedAt            time.Time
}

func (vendorDBM) TableName() string { return "vendors" }

func (dbm *vendorDBM) toDomain() *models.VendorProfile {
	return &models.VendorProfile{
		ID:                   dbm.ID,
		Name:                 dbm.Name,
		Industry:             dbm.Industry,
		Status:               dbm.Status,
		ComplianceStatus:     models.ComplianceStatus(dbm.ComplianceStatus),
		OverallRiskScore:     dbm.OverallRiskScore,
		SecurityPostureScore: dbm.SecurityPostureScore,
	}
}

// relationshipDBM is the database model for the asset_vendor_relationships table.
type relationshipDBM struct {
	ID                 string `gorm:"primaryKey"`
	AssetID            string
	VendorID           string
	CriticalityToAsset string
	DataAccessLevel    string
	IntegrationType    string
}

func (relationshipDBM) TableName() string { return "asset_vendor_relationships" }

func (dbm *relationshipDBM) toDomain() *models.RelationshipProfile {
	return &models.RelationshipProfile{
		ID:                 dbm.ID,
		AssetID:            dbm.AssetID,
		VendorID:           dbm.VendorID,
		CriticalityToAsset: dbm.CriticalityToAsset,
		DataAccessLevel:    dbm.DataAccessLevel,
		IntegrationType:    dbm.IntegrationType,
	}
}

// ProfileRepository is the PostgreSQL implementation of repository.ProfileRepository.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a ProfileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetAssetProfile returns (nil, nil) when the asset does not exist.
func (r *ProfileRepository) GetAssetProfile(ctx context.Context, assetID string) (*models.AssetProfile, error) {
	var dbm assetDBM
	if err := r.db.WithContext(ctx).Where("id = ?", assetID).First(&dbm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dbm.toDomain(), nil
}

// GetVendorProfile returns (nil, nil) when the vendor does not exist.
func (r *ProfileRepository) GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	var dbm vendorDBM
	if err := r.db.WithContext(ctx).Where("id = ?", vendorID).First(&dbm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dbm.toDomain(), nil
}

// GetRelationshipProfile returns (nil, nil) when the relationship does not exist.
func (r *ProfileRepository) GetRelationshipProfile(ctx context.Context, relationshipID string) (*models.RelationshipProfile, error) {
	var dbm relationshipDBM
	if err := r.db.WithContext(ctx).Where("id = ?", relationshipID).First(&dbm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dbm.toDomain(), nil
}

// UpdateVendorScores mirrors freshly computed scores onto the vendor row.
func (r *ProfileRepository) UpdateVendorScores(ctx context.Context, vendorID string, overallRating, securityPosture float64) error {
	return r.db.WithContext(ctx).Model(&vendorDBM{}).
		Where("id = ?", vendorID).
		Updates(map[string]interface{}{
			"overall_rating":         overallRating,
			"security_posture_score": securityPosture,
			"updated_at":             time.Now(),
		}).Error
}
