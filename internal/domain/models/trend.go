package models

import "time"

// TrendWindow is the requested span of a trend analysis.
type TrendWindow string

const (
	Window30Days TrendWindow = "30d"
	Window90Days TrendWindow = "90d"
	Window1Year  TrendWindow = "1y"
)

// Days returns the window length in days, or 0 for an unknown window.
func (w TrendWindow) Days() int {
	switch w {
	case Window30Days:
		return 30
	case Window90Days:
		return 90
	case Window1Year:
		return 365
	default:
		return 0
	}
}

// OverallTrend classifies the direction of a risk series.
type OverallTrend string

const (
	TrendImproving     OverallTrend = "improving"
	TrendSteady        OverallTrend = "stable"
	TrendDeteriorating OverallTrend = "deteriorating"
)

// TrendPoint is one day of aggregated risk activity.
type TrendPoint struct {
	Date          time.Time `json:"date"`
	AverageScore  float64   `json:"avg_score"`
	HighCount     int       `json:"high_count"`
	CriticalCount int       `json:"critical_count"`
}

// ForecastPoint is one projected future day with its confidence interval.
type ForecastPoint struct {
	Date               time.Time  `json:"date"`
	PredictedScore     float64    `json:"predicted_score"`
	ConfidenceInterval [2]float64 `json:"confidence_interval"`
}

// TrendReport is the full answer to a trend query: the historical daily
// series, the forward projection and the overall direction classification.
type TrendReport struct {
	OrgID        string          `json:"org_id"`
	Window       TrendWindow     `json:"window"`
	OverallTrend OverallTrend    `json:"overall_trend"`
	TrendData    []TrendPoint    `json:"trend_data"`
	Forecast     []ForecastPoint `json:"forecast"`
	GeneratedAt  time.Time       `json:"generated_at"`
}
