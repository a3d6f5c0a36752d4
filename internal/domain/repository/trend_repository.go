package repository

import (
	"context"
	"time"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// TrendRepository is the read model behind trend analytics. It aggregates
// risk assessment history into one point per day over [from, to].
type TrendRepository interface {
	DailyRiskSeries(ctx context.Context, orgID string, from, to time.Time) ([]models.TrendPoint, error)
}
