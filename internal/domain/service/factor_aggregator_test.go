package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/service"
)

func singleFactor(score float64) []models.RiskFactor {
	return []models.RiskFactor{{Name: "test", Weight: 1.0, Score: score}}
}

func TestAggregate_EmptyFactors(t *testing.T) {
	agg := service.NewFactorAggregator()

	score, level := agg.Aggregate(nil)

	assert.Equal(t, 0, score)
	assert.Equal(t, models.RiskLevelLow, level)
}

func TestAggregate_BandBoundaries(t *testing.T) {
	agg := service.NewFactorAggregator()

	cases := []struct {
		score float64
		want  models.RiskLevel
	}{
		{39, models.RiskLevelLow},
		{40, models.RiskLevelMedium},
		{59, models.RiskLevelMedium},
		{60, models.RiskLevelHigh},
		{79, models.RiskLevelHigh},
		{80, models.RiskLevelCritical},
		{100, models.RiskLevelCritical},
	}
	for _, tc := range cases {
		score, level := agg.Aggregate(singleFactor(tc.score))
		assert.Equal(t, int(tc.score), score)
		assert.Equal(t, tc.want, level, "score %v", tc.score)
	}
}

func TestAggregate_ClampsAboveHundred(t *testing.T) {
	agg := service.NewFactorAggregator()

	factors := []models.RiskFactor{
		{Name: "a", Weight: 1.0, Score: 90},
		{Name: "b", Weight: 1.0, Score: 90},
	}
	score, level := agg.Aggregate(factors)

	assert.Equal(t, 100, score)
	assert.Equal(t, models.RiskLevelCritical, level)
}

func TestAggregate_Monotonic(t *testing.T) {
	agg := service.NewFactorAggregator()

	factors := []models.RiskFactor{
		{Name: "a", Weight: 0.5, Score: 40},
		{Name: "b", Weight: 0.3, Score: 60},
	}
	base, _ := agg.Aggregate(factors)

	for _, bump := range []float64{45, 60, 80, 100} {
		bumped := []models.RiskFactor{
			{Name: "a", Weight: 0.5, Score: bump},
			{Name: "b", Weight: 0.3, Score: 60},
		}
		score, _ := agg.Aggregate(bumped)
		assert.GreaterOrEqual(t, score, base)
		base = score
	}
}

func TestAggregate_StandardAssetExample(t *testing.T) {
	agg := service.NewFactorAggregator()

	asset := &models.AssetProfile{
		ID:                     "asset-1",
		Criticality:            "critical",
		BusinessImpact:         "high",
		DataClassification:     "confidential",
		ComplianceRequirements: []string{"GDPR"},
		SecurityControls:       nil,
	}
	factors := service.AssetFactors(asset)
	score, level := agg.Aggregate(factors)

	// 90*0.30 + 65*0.25 + 70*0.20 + 70*0.15 + 100*0.10 = 77.75 -> 78
	assert.Equal(t, 78, score)
	assert.Equal(t, models.RiskLevelHigh, level)
}

func TestVendorFactors_ComplianceMapping(t *testing.T) {
	cases := []struct {
		status models.ComplianceStatus
		want   float64
	}{
		{models.ComplianceCompliant, 20},
		{models.CompliancePartial, 60},
		{models.ComplianceNonCompliant, 90},
		{models.ComplianceStatus("unknown"), 50},
	}
	for _, tc := range cases {
		factors := service.VendorFactors(&models.VendorProfile{ID: "v1", ComplianceStatus: tc.status})
		var found bool
		for _, f := range factors {
			if f.Name == "Vendor Compliance Status" {
				assert.Equal(t, tc.want, f.Score, "status %s", tc.status)
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestRelationshipFactors_IntegrationScores(t *testing.T) {
	rel := &models.RelationshipProfile{
		ID:                 "rel-1",
		CriticalityToAsset: "critical",
		DataAccessLevel:    "full_access",
		IntegrationType:    "direct_access",
	}
	factors := service.RelationshipFactors(rel)

	assert.Len(t, factors, 3)
	for _, f := range factors {
		assert.Equal(t, 90.0, f.Score, f.Name)
	}
}

func TestRecommendations_ThresholdAndDedupe(t *testing.T) {
	agg := service.NewFactorAggregator()

	factors := []models.RiskFactor{
		{Name: "hot", Weight: 0.5, Score: 75, MitigationControls: []string{"patch it", "patch it"}},
		{Name: "cold", Weight: 0.5, Score: 30, MitigationControls: []string{"ignore me"}},
	}
	recs := agg.Recommendations(factors, 55)

	assert.Contains(t, recs, "patch it")
	assert.NotContains(t, recs, "ignore me")
	// "patch it" appears once despite the duplicate control entry.
	count := 0
	for _, r := range recs {
		if r == "patch it" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildAssessment_NextDueSchedule(t *testing.T) {
	agg := service.NewFactorAggregator()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		score    float64
		wantDays int
	}{
		{85, 30},
		{65, 90},
		{45, 180},
		{20, 365},
	}
	for _, tc := range cases {
		assessment := agg.BuildAssessment(
			models.SubjectRef{VendorID: "v1"},
			models.AssessmentTypeVendor,
			singleFactor(tc.score),
			"engine",
			now,
		)
		assert.Equal(t, now.AddDate(0, 0, tc.wantDays), assessment.NextDue, "score %v", tc.score)
		assert.Equal(t, models.AssessmentStatusDraft, assessment.Status)
		assert.NotEmpty(t, assessment.ID)
	}
}
