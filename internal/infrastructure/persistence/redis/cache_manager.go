package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// CacheManager caches the expensive derived reads, trend reports and vendor
// ratings. A cache miss returns (nil, nil); cache failures are logged and
// reported as misses so Redis outages degrade to recomputation, never to
// request failures.
type CacheManager interface {
	GetTrendReport(ctx context.Context, orgID string, window models.TrendWindow) (*models.TrendReport, error)
	SetTrendReport(ctx context.Context, report *models.TrendReport, ttl time.Duration) error
	GetVendorRating(ctx context.Context, vendorID string) (*models.VendorRating, error)
	SetVendorRating(ctx context.Context, rating *models.VendorRating, ttl time.Duration) error
	InvalidateVendorRating(ctx context.Context, vendorID string) error
}

type cacheManagerImpl struct {
	client *redis.Client
	log    logger.Logger
}

// NewCacheManager creates a CacheManager on the given client.
func NewCacheManager(client *redis.Client, log logger.Logger) CacheManager {
	return &cacheManagerImpl{client: client, log: log.WithComponent("cache")}
}

func trendKey(orgID string, window models.TrendWindow) string {
	return fmt.Sprintf("trend:%s:%s", orgID, window)
}

func ratingKey(vendorID string) string {
	return fmt.Sprintf("rating:%s", vendorID)
}

func (c *cacheManagerImpl) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		c.log.Warn(ctx, "cache read failed", logger.Fields{"key": key, "error": err.Error()})
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *cacheManagerImpl) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		c.log.Warn(ctx, "cache write failed", logger.Fields{"key": key, "error": err.Error()})
		return err
	}
	return nil
}

func (c *cacheManagerImpl) GetTrendReport(ctx context.Context, orgID string, window models.TrendWindow) (*models.TrendReport, error) {
	var report models.TrendReport
	hit, err := c.getJSON(ctx, trendKey(orgID, window), &report)
	if err != nil || !hit {
		return nil, err
	}
	return &report, nil
}

func (c *cacheManagerImpl) SetTrendReport(ctx context.Context, report *models.TrendReport, ttl time.Duration) error {
	return c.setJSON(ctx, trendKey(report.OrgID, report.Window), report, ttl)
}

func (c *cacheManagerImpl) GetVendorRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	var rating models.VendorRating
	hit, err := c.getJSON(ctx, ratingKey(vendorID), &rating)
	if err != nil || !hit {
		return nil, err
	}
	return &rating, nil
}

func (c *cacheManagerImpl) SetVendorRating(ctx context.Context, rating *models.VendorRating, ttl time.Duration) error {
	return c.setJSON(ctx, ratingKey(rating.VendorID), rating, ttl)
}

func (c *cacheManagerImpl) InvalidateVendorRating(ctx context.Context, vendorID string) error {
	return c.client.Del(ctx, ratingKey(vendorID)).Err()
}
