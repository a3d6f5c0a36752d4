package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// mitigationThreshold is the factor score at or above which a factor's
// mitigation controls are surfaced as recommendations.
const mitigationThreshold = 70

// FactorAggregator collapses a set of weighted risk factors into a single
// clamped score and its risk band. It is stateless and safe for concurrent use.
type FactorAggregator struct{}

// NewFactorAggregator creates a FactorAggregator.
func NewFactorAggregator() *FactorAggregator {
	return &FactorAggregator{}
}

// Aggregate computes the weighted sum of all factors, rounds it and clamps it
// into [0,100]. An empty factor list yields (0, low); that is a valid result,
// not an error.
func (a *FactorAggregator) Aggregate(factors []models.RiskFactor) (int, models.RiskLevel) {
	var raw float64
	for _, f := range factors {
		raw += f.Contribution()
	}
	score := int(models.ClampScore(math.Round(raw)))
	return score, models.RiskLevelFromScore(score)
}

// Recommendations collects the mitigation controls of every factor scoring at
// or above the mitigation threshold, appends the general guidance for the
// score band, and de-duplicates while preserving order.
func (a *FactorAggregator) Recommendations(factors []models.RiskFactor, score int) []string {
	var recs []string
	for _, f := range factors {
		if f.Score >= mitigationThreshold {
			recs = append(recs, f.MitigationControls...)
		}
	}
	recs = append(recs, bandGuidance(score)...)
	return dedupe(recs)
}

// BuildAssessment runs the full aggregation for one subject and wraps the
// result in a draft RiskAssessment ready for persistence.
func (a *FactorAggregator) BuildAssessment(subject models.SubjectRef, assessmentType models.AssessmentType, factors []models.RiskFactor, assessedBy string, now time.Time) *models.RiskAssessment {
	score, level := a.Aggregate(factors)
	return &models.RiskAssessment{
		ID:              uuid.NewString(),
		Subject:         subject,
		Type:            assessmentType,
		Factors:         factors,
		CalculatedScore: score,
		RiskLevel:       level,
		Recommendations: a.Recommendations(factors, score),
		NextDue:         now.Add(nextDueInterval(score)),
		AssessedBy:      assessedBy,
		AssessedAt:      now,
		Status:          models.AssessmentStatusDraft,
	}
}

// nextDueInterval schedules the follow-up assessment: the higher the score,
// the sooner the next review.
func nextDueInterval(score int) time.Duration {
	const day = 24 * time.Hour
	switch {
	case score >= 80:
		return 30 * day
	case score >= 60:
		return 90 * day
	case score >= 40:
		return 180 * day
	default:
		return 365 * day
	}
}

func bandGuidance(score int) []string {
	switch models.RiskLevelFromScore(score) {
	case models.RiskLevelCritical:
		return []string{
			"Escalate to the risk committee and initiate immediate remediation",
			"Restrict new engagements with this subject until risk is reduced",
		}
	case models.RiskLevelHigh:
		return []string{
			"Prioritize remediation of the highest-scoring factors",
			"Increase assessment frequency until the score improves",
		}
	case models.RiskLevelMedium:
		return []string{
			"Track open findings and verify mitigations at the next review",
		}
	default:
		return []string{
			"Maintain current controls and standard review cadence",
		}
	}
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
