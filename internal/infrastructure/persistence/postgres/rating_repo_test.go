package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&vendorRatingDBM{}, &vendorDBM{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM vendor_ratings")
		db.Exec("DELETE FROM vendors")
	})
	return db
}

func sampleRating(vendorID string, overall float64) *models.VendorRating {
	return &models.VendorRating{
		VendorID:             vendorID,
		OverallRating:        overall,
		AssessmentScore:      80,
		ComplianceScore:      100,
		ResponseTimeScore:    60,
		CompletionRate:       90,
		SecurityPostureScore: 85,
		Weights:              models.DefaultRatingWeights(),
		CalculatedAt:         time.Now().UTC(),
	}
}

func TestRatingRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), models.DefaultRatingWeights())

	rating, err := repo.GetVendorRating(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, rating)
}

func TestRatingRepository_UpsertThenGet(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), models.DefaultRatingWeights())
	ctx := context.Background()

	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("vendor-1", 82.5)))

	rating, err := repo.GetVendorRating(ctx, "vendor-1")
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 82.5, rating.OverallRating)
	assert.Equal(t, models.DefaultRatingWeights(), rating.Weights)
}

func TestRatingRepository_UpsertOverwritesExistingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db, models.DefaultRatingWeights())
	ctx := context.Background()

	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("vendor-1", 70)))
	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("vendor-1", 91)))

	var count int64
	require.NoError(t, db.Model(&vendorRatingDBM{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rating, err := repo.GetVendorRating(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, float64(91), rating.OverallRating)
}

func TestRatingRepository_ListByIndustrySkipsUnapprovedVendors(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db, models.DefaultRatingWeights())
	ctx := context.Background()

	vendors := []vendorDBM{
		{ID: "v1", Name: "Acme", Industry: "Financial", Status: "approved"},
		{ID: "v2", Name: "Bolt", Industry: "Financial", Status: "approved"},
		{ID: "v3", Name: "Crow", Industry: "Financial", Status: "pending"},
		{ID: "v4", Name: "Dart", Industry: "Healthcare", Status: "approved"},
	}
	require.NoError(t, db.Create(&vendors).Error)
	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("v1", 60)))
	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("v2", 80)))
	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("v3", 99)))
	require.NoError(t, repo.UpsertVendorRating(ctx, sampleRating("v4", 40)))

	ratings, err := repo.ListByIndustry(ctx, "Financial")
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{60, 80}, ratings)
}
