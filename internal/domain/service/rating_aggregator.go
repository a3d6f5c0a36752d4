package service

import (
	"math"
	"sort"
	"time"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// Response time bands in days and the neutral score used when a vendor has no
// completed assessments to measure.
const neutralResponseScore = 50

// RatingAggregator combines the five weighted vendor sub-scores into one
// overall rating and benchmarks vendors against their industry peers.
type RatingAggregator struct {
	weights models.RatingWeights
}

// NewRatingAggregator creates a RatingAggregator with the given weights.
func NewRatingAggregator(weights models.RatingWeights) *RatingAggregator {
	return &RatingAggregator{weights: weights}
}

// ComputeRating derives all sub-scores from the vendor profile and its
// assessment history, then folds them into the weighted overall rating.
// The computation is deterministic: unchanged inputs give an identical
// rating to two decimal places.
func (r *RatingAggregator) ComputeRating(vendor *models.VendorProfile, history []models.AssessmentRecord, now time.Time) *models.VendorRating {
	assessmentScore := r.assessmentScore(history)
	complianceScore := r.complianceScore(vendor.ComplianceStatus)
	responseScore := r.responseTimeScore(history)
	completionRate := r.completionRate(history)
	postureScore := r.securityPostureScore(vendor, assessmentScore, complianceScore)

	overall := assessmentScore*r.weights.Assessment +
		complianceScore*r.weights.Compliance +
		responseScore*r.weights.ResponseTime +
		completionRate*r.weights.CompletionRate +
		postureScore*r.weights.SecurityPosture

	return &models.VendorRating{
		VendorID:             vendor.ID,
		OverallRating:        models.ClampScore(round2(overall)),
		AssessmentScore:      assessmentScore,
		ComplianceScore:      complianceScore,
		ResponseTimeScore:    responseScore,
		CompletionRate:       completionRate,
		SecurityPostureScore: postureScore,
		Weights:              r.weights,
		CalculatedAt:         now,
	}
}

// assessmentScore is the mean questionnaire score across completed
// assessments, or 0 when none completed.
func (r *RatingAggregator) assessmentScore(history []models.AssessmentRecord) float64 {
	var sum float64
	var n int
	for _, rec := range history {
		if rec.Completed() {
			sum += rec.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func (r *RatingAggregator) complianceScore(status models.ComplianceStatus) float64 {
	switch status {
	case models.ComplianceCompliant:
		return 100
	case models.CompliancePartial:
		return 60
	default:
		return 20
	}
}

// responseTimeScore bands the mean days between sending and completing an
// assessment. Vendors with no measurable turnaround get the neutral score.
func (r *RatingAggregator) responseTimeScore(history []models.AssessmentRecord) float64 {
	var totalDays float64
	var n int
	for _, rec := range history {
		if rec.Completed() && rec.SentAt != nil {
			totalDays += rec.CompletedAt.Sub(*rec.SentAt).Hours() / 24
			n++
		}
	}
	if n == 0 {
		return neutralResponseScore
	}
	avg := totalDays / float64(n)
	switch {
	case avg <= 3:
		return 100
	case avg <= 7:
		return 80
	case avg <= 14:
		return 60
	case avg <= 30:
		return 40
	default:
		return 20
	}
}

func (r *RatingAggregator) completionRate(history []models.AssessmentRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	var completed int
	for _, rec := range history {
		if rec.Completed() {
			completed++
		}
	}
	return round2(float64(completed) / float64(len(history)) * 100)
}

// securityPostureScore prefers the vendor's stored posture score and falls
// back to the mean of the assessment and compliance scores.
func (r *RatingAggregator) securityPostureScore(vendor *models.VendorProfile, assessmentScore, complianceScore float64) float64 {
	if vendor.SecurityPostureScore != nil {
		return *vendor.SecurityPostureScore
	}
	return round2((assessmentScore + complianceScore) / 2)
}

// Benchmark summarizes the rating distribution of one industry. An empty
// population yields all zeros rather than an error.
func (r *RatingAggregator) Benchmark(industry string, ratings []float64) models.IndustryBenchmark {
	if len(ratings) == 0 {
		return models.IndustryBenchmark{Industry: industry}
	}
	sorted := make([]float64, len(ratings))
	copy(sorted, ratings)
	sort.Float64s(sorted)

	return models.IndustryBenchmark{
		Industry:     industry,
		Average:      round2(mean(sorted)),
		Median:       percentile(sorted, 50),
		Percentile25: percentile(sorted, 25),
		Percentile75: percentile(sorted, 75),
		VendorCount:  len(sorted),
	}
}

// percentile picks the value at index ceil(p/100*n)-1, clamped to the slice
// bounds. Input must be sorted ascending.
func percentile(sorted []float64, p float64) float64 {
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
