package service

import (
	"time"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
)

// Classification parameters: mean of the last week against the week before,
// with a dead band so small moves read as stable. Scores measure risk, so a
// falling mean is an improvement.
const (
	classificationSample = 7
	classificationBand   = 5.0
)

// ForecastEngine projects a daily risk series forward a fixed horizon and
// classifies the overall direction of the series.
type ForecastEngine struct{}

// NewForecastEngine creates a ForecastEngine.
func NewForecastEngine() *ForecastEngine {
	return &ForecastEngine{}
}

// Classify compares the mean of the last seven points against the mean of the
// seven preceding them. Fewer than fourteen points read as stable.
func (e *ForecastEngine) Classify(series []models.TrendPoint) models.OverallTrend {
	if len(series) < 2*classificationSample {
		return models.TrendSteady
	}
	recent := series[len(series)-classificationSample:]
	older := series[len(series)-2*classificationSample : len(series)-classificationSample]

	recentMean := meanScore(recent)
	olderMean := meanScore(older)

	switch {
	case recentMean < olderMean-classificationBand:
		return models.TrendImproving
	case recentMean > olderMean+classificationBand:
		return models.TrendDeteriorating
	default:
		return models.TrendSteady
	}
}

// Forecast projects the series forward by the fixed horizon, one point per
// day. Each point carries a symmetric confidence interval around the
// predicted score. The predicted score is clamped into [0,100]; the interval
// keeps its full width so callers can rely on it.
func (e *ForecastEngine) Forecast(series []models.TrendPoint) []models.ForecastPoint {
	var (
		base  float64
		slope float64
		start time.Time
	)

	if len(series) > 0 {
		last := series[len(series)-1]
		base = last.AverageScore
		start = last.Date
		slope = dailySlope(series)
	} else {
		start = time.Now().UTC().Truncate(24 * time.Hour)
	}

	forecast := make([]models.ForecastPoint, 0, constants.ForecastHorizonDays)
	for i := 1; i <= constants.ForecastHorizonDays; i++ {
		predicted := models.ClampScore(base + slope*float64(i))
		forecast = append(forecast, models.ForecastPoint{
			Date:           start.AddDate(0, 0, i),
			PredictedScore: predicted,
			ConfidenceInterval: [2]float64{
				predicted - constants.ForecastIntervalHalfWidth,
				predicted + constants.ForecastIntervalHalfWidth,
			},
		})
	}
	return forecast
}

// BuildReport assembles the full trend answer for one query. The stored
// series is sparse; the report always carries exactly one point per day of
// the window, so classification and forecasting run on daily points.
func (e *ForecastEngine) BuildReport(orgID string, window models.TrendWindow, series []models.TrendPoint, now time.Time) *models.TrendReport {
	dense := fillDaily(series, now, window.Days())
	return &models.TrendReport{
		OrgID:        orgID,
		Window:       window,
		OverallTrend: e.Classify(dense),
		TrendData:    dense,
		Forecast:     e.Forecast(dense),
		GeneratedAt:  now,
	}
}

// fillDaily expands a sparse series into one point per day, ending on the
// day of now. Days without assessments carry the last observed average
// forward (zero before the first observation) with zero level counts.
func fillDaily(series []models.TrendPoint, now time.Time, days int) []models.TrendPoint {
	if days <= 0 {
		return series
	}
	byDay := make(map[time.Time]models.TrendPoint, len(series))
	for _, p := range series {
		byDay[p.Date.UTC().Truncate(24*time.Hour)] = p
	}

	start := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	dense := make([]models.TrendPoint, 0, days)
	var carried float64
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		if p, ok := byDay[day]; ok {
			carried = p.AverageScore
			dense = append(dense, p)
			continue
		}
		dense = append(dense, models.TrendPoint{Date: day, AverageScore: carried})
	}
	return dense
}

// dailySlope estimates the per-day drift of the series from the same 7-vs-7
// comparison the classifier uses. Short series drift nowhere.
func dailySlope(series []models.TrendPoint) float64 {
	if len(series) < 2*classificationSample {
		return 0
	}
	recent := series[len(series)-classificationSample:]
	older := series[len(series)-2*classificationSample : len(series)-classificationSample]
	return (meanScore(recent) - meanScore(older)) / float64(classificationSample)
}

func meanScore(points []models.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.AverageScore
	}
	return sum / float64(len(points))
}
