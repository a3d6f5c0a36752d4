package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/service"
)

func completedRecord(score float64, sentDaysAgo, turnaroundDays int) models.AssessmentRecord {
	sent := time.Now().AddDate(0, 0, -sentDaysAgo)
	completed := sent.AddDate(0, 0, turnaroundDays)
	return models.AssessmentRecord{
		Score:       score,
		Status:      "completed",
		SentAt:      &sent,
		CompletedAt: &completed,
		CreatedAt:   sent,
	}
}

func pendingRecord() models.AssessmentRecord {
	sent := time.Now().AddDate(0, 0, -5)
	return models.AssessmentRecord{Status: "sent", SentAt: &sent, CreatedAt: sent}
}

func TestComputeRating_CompliantVendor(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	vendor := &models.VendorProfile{ID: "v1", ComplianceStatus: models.ComplianceCompliant}

	rating := agg.ComputeRating(vendor, nil, time.Now())

	assert.Equal(t, 100.0, rating.ComplianceScore)
	assert.Equal(t, 0.0, rating.AssessmentScore)
	assert.Equal(t, 0.0, rating.CompletionRate)
	assert.Equal(t, 50.0, rating.ResponseTimeScore)
	// Posture falls back to (assessment + compliance) / 2.
	assert.Equal(t, 50.0, rating.SecurityPostureScore)
	// 0*0.4 + 100*0.25 + 50*0.15 + 0*0.1 + 50*0.1 = 37.5
	assert.Equal(t, 37.5, rating.OverallRating)
}

func TestComputeRating_CompletionRate(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	vendor := &models.VendorProfile{ID: "v1", ComplianceStatus: models.CompliancePartial}

	history := make([]models.AssessmentRecord, 0, 10)
	for i := 0; i < 8; i++ {
		history = append(history, completedRecord(70, 30+i, 2))
	}
	history = append(history, pendingRecord(), pendingRecord())

	rating := agg.ComputeRating(vendor, history, time.Now())

	assert.Equal(t, 80.0, rating.CompletionRate)
	assert.Equal(t, 70.0, rating.AssessmentScore)
}

func TestComputeRating_ResponseTimeBands(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	vendor := &models.VendorProfile{ID: "v1", ComplianceStatus: models.ComplianceCompliant}

	cases := []struct {
		turnaround int
		want       float64
	}{
		{2, 100},
		{5, 80},
		{10, 60},
		{25, 40},
		{45, 20},
	}
	for _, tc := range cases {
		rating := agg.ComputeRating(vendor, []models.AssessmentRecord{
			completedRecord(80, 60, tc.turnaround),
		}, time.Now())
		assert.Equal(t, tc.want, rating.ResponseTimeScore, "turnaround %d days", tc.turnaround)
	}
}

func TestComputeRating_StoredPostureWins(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	posture := 92.0
	vendor := &models.VendorProfile{
		ID:                   "v1",
		ComplianceStatus:     models.ComplianceCompliant,
		SecurityPostureScore: &posture,
	}

	rating := agg.ComputeRating(vendor, nil, time.Now())

	assert.Equal(t, 92.0, rating.SecurityPostureScore)
}

func TestComputeRating_Idempotent(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	vendor := &models.VendorProfile{ID: "v1", ComplianceStatus: models.CompliancePartial}
	history := []models.AssessmentRecord{
		completedRecord(83.33, 40, 4),
		completedRecord(67.5, 20, 9),
		pendingRecord(),
	}

	first := agg.ComputeRating(vendor, history, time.Now())
	second := agg.ComputeRating(vendor, history, time.Now())

	assert.Equal(t, first.OverallRating, second.OverallRating)
	assert.Equal(t, first.AssessmentScore, second.AssessmentScore)
	assert.Equal(t, first.ResponseTimeScore, second.ResponseTimeScore)
}

func TestComputeRating_OverallWeightedSum(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())
	posture := 90.0
	vendor := &models.VendorProfile{
		ID:                   "v1",
		ComplianceStatus:     models.ComplianceCompliant,
		SecurityPostureScore: &posture,
	}
	history := []models.AssessmentRecord{
		completedRecord(80, 30, 2),
		completedRecord(90, 15, 2),
	}

	rating := agg.ComputeRating(vendor, history, time.Now())

	// assessment 85*0.4 + compliance 100*0.25 + response 100*0.15 +
	// completion 100*0.1 + posture 90*0.1 = 93.
	assert.Equal(t, 93.0, rating.OverallRating)
}

func TestBenchmark_EmptyPopulation(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())

	benchmark := agg.Benchmark("Retail", nil)

	assert.Equal(t, 0.0, benchmark.Average)
	assert.Equal(t, 0.0, benchmark.Median)
	assert.Equal(t, 0.0, benchmark.Percentile25)
	assert.Equal(t, 0.0, benchmark.Percentile75)
	assert.Equal(t, 0, benchmark.VendorCount)
}

func TestBenchmark_Percentiles(t *testing.T) {
	agg := service.NewRatingAggregator(models.DefaultRatingWeights())

	ratings := []float64{10, 20, 30, 40, 50, 60, 70, 80}
	benchmark := agg.Benchmark("Technology", ratings)

	assert.Equal(t, 45.0, benchmark.Average)
	// Index = ceil(p/100*8)-1 over the sorted slice.
	assert.Equal(t, 40.0, benchmark.Median)       // ceil(4)-1 = 3
	assert.Equal(t, 20.0, benchmark.Percentile25) // ceil(2)-1 = 1
	assert.Equal(t, 60.0, benchmark.Percentile75) // ceil(6)-1 = 5
	assert.Equal(t, 8, benchmark.VendorCount)
}
