// Package models defines the domain entities of the risk intelligence engine.
package models

// FactorCategory classifies a risk factor.
type FactorCategory string

const (
	CategorySecurity     FactorCategory = "security"
	CategoryCompliance   FactorCategory = "compliance"
	CategoryOperational  FactorCategory = "operational"
	CategoryFinancial    FactorCategory = "financial"
	CategoryReputational FactorCategory = "reputational"
)

// RiskLevel is the qualitative band derived from a numeric risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskLevelFromScore maps a numeric score onto its risk band. The band is a
// deterministic function of the score and is never stored independently.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLevelCritical
	case score >= 60:
		return RiskLevelHigh
	case score >= 40:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// RiskFactor is a single named, weighted contribution to a risk assessment.
// A factor is immutable once attached to an assessment.
type RiskFactor struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Category           FactorCategory `json:"category"`
	Weight             float64        `json:"weight"`
	Score              float64        `json:"score"`
	Description        string         `json:"description,omitempty"`
	Evidence           []string       `json:"evidence,omitempty"`
	MitigationControls []string       `json:"mitigation_controls,omitempty"`
}

// Contribution returns the factor's weighted contribution to the raw score.
func (f RiskFactor) Contribution() float64 {
	return f.Score * f.Weight
}

// ClampScore bounds a raw weighted sum into the canonical [0,100] range.
func ClampScore(raw float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}
