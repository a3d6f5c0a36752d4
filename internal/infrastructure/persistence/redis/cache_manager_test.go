package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

func newTestCache(t *testing.T) (CacheManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheManager(client, logger.NewNoopLogger()), mr
}

func TestCacheManager_TrendReportRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	report := &models.TrendReport{
		OrgID:        "org-1",
		Window:       models.Window30Days,
		OverallTrend: models.TrendSteady,
		TrendData: []models.TrendPoint{
			{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), AverageScore: 55, HighCount: 2},
		},
		GeneratedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.SetTrendReport(ctx, report, time.Minute))

	got, err := cache.GetTrendReport(ctx, "org-1", models.Window30Days)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report.OverallTrend, got.OverallTrend)
	assert.Equal(t, report.TrendData, got.TrendData)
}

func TestCacheManager_MissReturnsNilNil(t *testing.T) {
	cache, _ := newTestCache(t)

	report, err := cache.GetTrendReport(context.Background(), "org-1", models.Window90Days)
	assert.NoError(t, err)
	assert.Nil(t, report)

	rating, err := cache.GetVendorRating(context.Background(), "vendor-1")
	assert.NoError(t, err)
	assert.Nil(t, rating)
}

func TestCacheManager_TrendReportExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	report := &models.TrendReport{OrgID: "org-1", Window: models.Window30Days}
	require.NoError(t, cache.SetTrendReport(ctx, report, time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := cache.GetTrendReport(ctx, "org-1", models.Window30Days)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheManager_InvalidateVendorRating(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	rating := &models.VendorRating{VendorID: "vendor-1", OverallRating: 77.5}
	require.NoError(t, cache.SetVendorRating(ctx, rating, time.Minute))
	require.NoError(t, cache.InvalidateVendorRating(ctx, "vendor-1"))

	got, err := cache.GetVendorRating(ctx, "vendor-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheManager_ReadFailureDegradesToMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := NewCacheManager(client, logger.NewNoopLogger())
	mr.Close()

	got, err := cache.GetVendorRating(context.Background(), "vendor-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
