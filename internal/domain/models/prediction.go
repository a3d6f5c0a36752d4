package models

import "time"

// FactorTrend is the direction a prediction factor is moving in.
type FactorTrend string

const (
	TrendIncreasing FactorTrend = "increasing"
	TrendStable     FactorTrend = "stable"
	TrendDecreasing FactorTrend = "decreasing"
)

// PredictionFactor is one named contribution to a heuristic risk prediction.
type PredictionFactor struct {
	Name        string      `json:"name"`
	Impact      float64     `json:"impact"`
	Trend       FactorTrend `json:"trend"`
	Description string      `json:"description,omitempty"`
}

// RiskPrediction is the output of the heuristic forward-looking scoring. It is
// derived from history on demand and regenerated rather than treated as ground
// truth. There is no trained model behind it; the formula is deterministic.
type RiskPrediction struct {
	VendorID          string             `json:"vendor_id"`
	RiskScore         int                `json:"risk_score"`
	RiskLevel         RiskLevel          `json:"risk_level"`
	Confidence        float64            `json:"confidence"`
	Factors           []PredictionFactor `json:"factors"`
	Recommendations   []string           `json:"recommendations,omitempty"`
	NextAssessmentDue time.Time          `json:"next_assessment_due"`
	GeneratedAt       time.Time          `json:"generated_at"`
}
