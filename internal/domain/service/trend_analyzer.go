package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// Trend term weights. The deltas are damped before entering the combined
// prediction so a single noisy assessment cannot dominate the base score.
const (
	assessmentTrendWeight = 0.10
	riskTrendWeight       = 0.15

	trendSampleSize = 3
)

// Industry benchmark bonus: added risk for sectors with elevated threat
// exposure. Added, never subtracted.
var industryBenchmarkBonus = map[string]float64{
	"Financial":     5,
	"Healthcare":    4,
	"Government":    6,
	"Defense":       7,
	"Technology":    2,
	"Energy":        3,
	"Manufacturing": 1,
}

// TrendAnalyzer derives trend deltas, consistency and staleness penalties from
// ordered score history, and combines them into a heuristic risk prediction.
// The prediction is a deterministic formula, not a trained model.
type TrendAnalyzer struct{}

// NewTrendAnalyzer creates a TrendAnalyzer.
func NewTrendAnalyzer() *TrendAnalyzer {
	return &TrendAnalyzer{}
}

// AssessmentTrend compares the mean of the most recent three assessment
// scores against the mean of the three before them, damped by the assessment
// trend weight. Scores are ordered newest first. Fewer than two records give
// no signal and return 0.
func (t *TrendAnalyzer) AssessmentTrend(scores []float64) float64 {
	return trendDelta(scores) * assessmentTrendWeight
}

// RiskTrend is the same recent-versus-older comparison over historical risk
// assessment scores, with its own weight.
func (t *TrendAnalyzer) RiskTrend(scores []float64) float64 {
	return trendDelta(scores) * riskTrendWeight
}

func trendDelta(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	recent := scores[:min(trendSampleSize, len(scores))]
	older := scores[len(recent):]
	if len(older) > trendSampleSize {
		older = older[:trendSampleSize]
	}
	if len(older) == 0 {
		return 0
	}
	return mean(recent) - mean(older)
}

// ConsistencyScore measures how stable the last scores are: population
// variance mapped onto [0,1] where 1 is perfectly consistent. Requires at
// least three scores; with less data it reports full consistency.
func (t *TrendAnalyzer) ConsistencyScore(scores []float64) float64 {
	if len(scores) < trendSampleSize {
		return 1
	}
	return math.Max(0, 1-populationVariance(scores)/100)
}

// consistencyTerm converts the consistency score into its signed contribution
// to the combined prediction. The sign is part of the contract: low variance
// pushes the term positive.
func (t *TrendAnalyzer) consistencyTerm(scores []float64) float64 {
	if len(scores) < trendSampleSize {
		return 0
	}
	return (t.ConsistencyScore(scores) - 0.5) * 10
}

// BenchmarkBonus returns the added risk for the vendor's industry sector.
func (t *TrendAnalyzer) BenchmarkBonus(industry string) float64 {
	return industryBenchmarkBonus[industry]
}

// DecayPenalty penalizes stale assessment coverage. lastAssessed is the time
// of the most recent assessment; a nil value means the subject has never been
// assessed.
func (t *TrendAnalyzer) DecayPenalty(lastAssessed *time.Time, now time.Time) float64 {
	if lastAssessed == nil {
		return 5
	}
	days := now.Sub(*lastAssessed).Hours() / 24
	switch {
	case days > 365:
		return 5
	case days > 180:
		return 3
	case days > 90:
		return 1
	default:
		return 0
	}
}

// PredictionInput carries the history slices a prediction is derived from.
// Score slices are ordered newest first.
type PredictionInput struct {
	VendorID          string
	BaseScore         float64
	Industry          string
	AssessmentScores  []float64
	RiskScores        []float64
	LastAssessedAt    *time.Time
	AssessmentCount   int
	RiskHistoryCount  int
	HasRecentActivity bool // any record within the last 90 days
}

// Predict combines the base vendor score with the trend, consistency,
// benchmark and decay terms into a clamped heuristic prediction.
func (t *TrendAnalyzer) Predict(in PredictionInput, now time.Time) *models.RiskPrediction {
	assessmentTerm := t.AssessmentTrend(in.AssessmentScores)
	riskTerm := t.RiskTrend(in.RiskScores)
	consistencyTerm := t.consistencyTerm(in.AssessmentScores)
	benchmarkTerm := t.BenchmarkBonus(in.Industry)
	decayTerm := t.DecayPenalty(in.LastAssessedAt, now)

	raw := in.BaseScore + assessmentTerm + riskTerm + consistencyTerm + benchmarkTerm + decayTerm
	score := int(math.Round(models.ClampScore(raw)))

	prediction := &models.RiskPrediction{
		VendorID:   in.VendorID,
		RiskScore:  score,
		RiskLevel:  models.RiskLevelFromScore(score),
		Confidence: t.confidence(in),
		Factors: []models.PredictionFactor{
			{
				Name:        "assessment_trend",
				Impact:      assessmentTerm,
				Trend:       factorTrendOf(assessmentTerm),
				Description: "Short-term movement of questionnaire assessment scores",
			},
			{
				Name:        "risk_trend",
				Impact:      riskTerm,
				Trend:       factorTrendOf(riskTerm),
				Description: "Short-term movement of computed risk scores",
			},
			{
				Name:        "score_consistency",
				Impact:      consistencyTerm,
				Trend:       factorTrendOf(consistencyTerm),
				Description: "Stability of recent assessment scores",
			},
			{
				Name:        "industry_benchmark",
				Impact:      benchmarkTerm,
				Trend:       models.TrendStable,
				Description: fmt.Sprintf("Sector risk adjustment for %q", in.Industry),
			},
			{
				Name:        "assessment_staleness",
				Impact:      decayTerm,
				Trend:       factorTrendOf(decayTerm),
				Description: "Penalty for time elapsed since the last assessment",
			},
		},
		Recommendations:   predictionRecommendations(score, decayTerm),
		NextAssessmentDue: now.Add(nextDueInterval(score)),
		GeneratedAt:       now,
	}
	return prediction
}

// confidence grades how much history backs the prediction: 0.5 base, +0.2 for
// a meaningful assessment history, +0.2 for risk history depth, +0.1 for
// recent activity, capped at 1.0.
func (t *TrendAnalyzer) confidence(in PredictionInput) float64 {
	confidence := 0.5
	if in.AssessmentCount >= 5 {
		confidence += 0.2
	}
	if in.RiskHistoryCount >= 3 {
		confidence += 0.2
	}
	if in.HasRecentActivity {
		confidence += 0.1
	}
	return math.Min(confidence, 1.0)
}

func predictionRecommendations(score int, decayTerm float64) []string {
	recs := bandGuidance(score)
	if decayTerm > 0 {
		recs = append(recs, "Schedule a fresh assessment; current data is stale")
	}
	return recs
}

func factorTrendOf(impact float64) models.FactorTrend {
	switch {
	case impact > 0.5:
		return models.TrendIncreasing
	case impact < -0.5:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}
