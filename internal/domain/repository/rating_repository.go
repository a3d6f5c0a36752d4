package repository

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// RatingRepository stores vendor ratings. One row per vendor; recomputation
// overwrites the previous value (last write wins).
type RatingRepository interface {
	// GetVendorRating returns (nil, nil) when no rating has been computed yet.
	GetVendorRating(ctx context.Context, vendorID string) (*models.VendorRating, error)

	// UpsertVendorRating inserts or replaces the rating row for the vendor.
	UpsertVendorRating(ctx context.Context, rating *models.VendorRating) error

	// ListByIndustry returns the overall ratings of all approved vendors in
	// the given industry, for benchmarking.
	ListByIndustry(ctx context.Context, industry string) ([]float64, error)
}
