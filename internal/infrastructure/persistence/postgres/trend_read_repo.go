package postgres

import (
	"context"
	"time"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// TrendReadRepository answers daily trend queries with raw SQL over the
// risk_assessments table. It runs on the pgx pool rather than the ORM
// because the aggregation is a reporting query, not entity access.
type TrendReadRepository struct {
	conn *DBConnection
}

// NewTrendReadRepository creates a TrendReadRepository.
func NewTrendReadRepository(conn *DBConnection) repository.TrendRepository {
	return &TrendReadRepository{conn: conn}
}

const dailyRiskSeriesSQL = `
SELECT
    date_trunc('day', ra.created_at)                            AS day,
    AVG(ra.calculated_score)                                    AS avg_score,
    COUNT(*) FILTER (WHERE ra.risk_level = 'high')              AS high_count,
    COUNT(*) FILTER (WHERE ra.risk_level = 'critical')          AS critical_count
FROM risk_assessments ra
JOIN vendors v ON v.id = ra.vendor_id
WHERE v.org_id = $1
  AND ra.created_at >= $2
  AND ra.created_at < $3
GROUP BY 1
ORDER BY 1 ASC`

// DailyRiskSeries aggregates assessment history into one point per active
// day. Days without assessments produce no row; the forecast engine fills
// the gaps so reports stay one-point-per-day.
func (r *TrendReadRepository) DailyRiskSeries(ctx context.Context, orgID string, from, to time.Time) ([]models.TrendPoint, error) {
	rows, err := r.conn.Pool().Query(ctx, dailyRiskSeriesSQL, orgID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.TrendPoint
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Date, &p.AverageScore, &p.HighCount, &p.CriticalCount); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
