package models

import "time"

// RatingWeights holds the fixed weights applied to the five vendor rating
// sub-scores. The weights are configuration, not runtime-mutable state.
type RatingWeights struct {
	Assessment      float64 `json:"assessment" mapstructure:"assessment"`
	Compliance      float64 `json:"compliance" mapstructure:"compliance"`
	ResponseTime    float64 `json:"response_time" mapstructure:"response_time"`
	CompletionRate  float64 `json:"completion_rate" mapstructure:"completion_rate"`
	SecurityPosture float64 `json:"security_posture" mapstructure:"security_posture"`
}

// DefaultRatingWeights returns the standard weighting scheme.
func DefaultRatingWeights() RatingWeights {
	return RatingWeights{
		Assessment:      0.4,
		Compliance:      0.25,
		ResponseTime:    0.15,
		CompletionRate:  0.1,
		SecurityPosture: 0.1,
	}
}

// Valid reports whether every weight is non-negative.
func (w RatingWeights) Valid() bool {
	return w.Assessment >= 0 && w.Compliance >= 0 && w.ResponseTime >= 0 &&
		w.CompletionRate >= 0 && w.SecurityPosture >= 0
}

// VendorRating is the aggregate score card for one vendor. It is recomputed
// on demand and upserted; no per-vendor rating history is kept here. Trends
// are derived from the assessment series instead.
type VendorRating struct {
	VendorID             string        `json:"vendor_id"`
	OverallRating        float64       `json:"overall_rating"`
	AssessmentScore      float64       `json:"assessment_score"`
	ComplianceScore      float64       `json:"compliance_score"`
	ResponseTimeScore    float64       `json:"response_time_score"`
	CompletionRate       float64       `json:"completion_rate"`
	SecurityPostureScore float64       `json:"security_posture_score"`
	Weights              RatingWeights `json:"weights"`
	CalculatedAt         time.Time     `json:"calculated_at"`
}

// IndustryBenchmark compares vendor ratings across one industry.
type IndustryBenchmark struct {
	Industry     string  `json:"industry"`
	Average      float64 `json:"average"`
	Median       float64 `json:"median"`
	Percentile25 float64 `json:"percentile_25"`
	Percentile75 float64 `json:"percentile_75"`
	VendorCount  int     `json:"vendor_count"`
}
