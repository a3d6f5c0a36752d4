// Package repository defines the storage contracts consumed by the risk engine.
package repository

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// ProfileRepository supplies entity read models. Lookups return (nil, nil)
// when the entity does not exist so the application layer decides how a
// missing subject is surfaced.
type ProfileRepository interface {
	GetAssetProfile(ctx context.Context, assetID string) (*models.AssetProfile, error)
	GetVendorProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error)
	GetRelationshipProfile(ctx context.Context, relationshipID string) (*models.RelationshipProfile, error)

	// UpdateVendorScores mirrors the freshly computed overall rating and
	// security posture score onto the vendor profile for fast reads.
	UpdateVendorScores(ctx context.Context, vendorID string, overallRating, securityPosture float64) error
}
