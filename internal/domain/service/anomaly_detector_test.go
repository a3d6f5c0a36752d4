package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/service"
)

func findAnomaly(anomalies []models.AnomalyDetection, kind models.AnomalyType) *models.AnomalyDetection {
	for i := range anomalies {
		if anomalies[i].Type == kind {
			return &anomalies[i]
		}
	}
	return nil
}

func TestDetect_NoSignalsNoAnomalies(t *testing.T) {
	detector := service.NewAnomalyDetector()

	anomalies := detector.Detect(service.AnomalySignals{VendorID: "v1"}, time.Now())

	assert.Empty(t, anomalies)
}

func TestDetect_RiskSpikeBoundary(t *testing.T) {
	detector := service.NewAnomalyDetector()
	now := time.Now()

	// Delta of exactly 20 does not fire.
	quiet := detector.Detect(service.AnomalySignals{
		VendorID:      "v1",
		CurrentScore:  70,
		PreviousScore: 50,
		HasScorePair:  true,
	}, now)
	assert.Nil(t, findAnomaly(quiet, models.AnomalyRiskSpike))

	// Delta of 21 fires with fixed severity and confidence.
	spiked := detector.Detect(service.AnomalySignals{
		VendorID:      "v1",
		CurrentScore:  71,
		PreviousScore: 50,
		HasScorePair:  true,
	}, now)
	spike := findAnomaly(spiked, models.AnomalyRiskSpike)
	if assert.NotNil(t, spike) {
		assert.Equal(t, models.SeverityCritical, spike.Severity)
		assert.Equal(t, 0.95, spike.Confidence)
		assert.Equal(t, []string{"v1"}, spike.AffectedEntities)
	}
}

func TestDetect_ResponseTimeBlowup(t *testing.T) {
	detector := service.NewAnomalyDetector()
	now := time.Now()

	// Exactly double does not fire; strictly more than double does.
	atDouble := detector.Detect(service.AnomalySignals{
		VendorID:                  "v1",
		CurrentAvgResponseDays:    10,
		HistoricalAvgResponseDays: 5,
		HasResponseData:           true,
	}, now)
	assert.Nil(t, findAnomaly(atDouble, models.AnomalyUnusualResponse))

	blown := detector.Detect(service.AnomalySignals{
		VendorID:                  "v1",
		CurrentAvgResponseDays:    10.5,
		HistoricalAvgResponseDays: 5,
		HasResponseData:           true,
	}, now)
	anomaly := findAnomaly(blown, models.AnomalyUnusualResponse)
	if assert.NotNil(t, anomaly) {
		assert.Equal(t, models.SeverityMedium, anomaly.Severity)
		assert.Equal(t, 0.85, anomaly.Confidence)
	}
}

func TestDetect_ConsistencyFloor(t *testing.T) {
	detector := service.NewAnomalyDetector()
	now := time.Now()

	anomalies := detector.Detect(service.AnomalySignals{
		VendorID:           "v1",
		ConsistencyScore:   0.49,
		HasConsistencyData: true,
	}, now)
	deviation := findAnomaly(anomalies, models.AnomalyPatternDeviation)
	if assert.NotNil(t, deviation) {
		assert.Equal(t, models.SeverityHigh, deviation.Severity)
		assert.Equal(t, 0.92, deviation.Confidence)
	}

	steady := detector.Detect(service.AnomalySignals{
		VendorID:           "v1",
		ConsistencyScore:   0.5,
		HasConsistencyData: true,
	}, now)
	assert.Nil(t, findAnomaly(steady, models.AnomalyPatternDeviation))
}

func TestDetect_ComplianceGap(t *testing.T) {
	detector := service.NewAnomalyDetector()
	now := time.Now()

	anomalies := detector.Detect(service.AnomalySignals{
		VendorID:          "v1",
		ComplianceScore:   0.6,
		HasComplianceData: true,
	}, now)
	gap := findAnomaly(anomalies, models.AnomalyComplianceGap)
	if assert.NotNil(t, gap) {
		assert.Equal(t, models.SeverityHigh, gap.Severity)
		assert.Equal(t, 0.88, gap.Confidence)
	}
}

func TestDetect_ChecksAreIndependent(t *testing.T) {
	detector := service.NewAnomalyDetector()
	now := time.Now()

	anomalies := detector.Detect(service.AnomalySignals{
		VendorID:                  "v1",
		CurrentAvgResponseDays:    20,
		HistoricalAvgResponseDays: 5,
		HasResponseData:           true,
		ConsistencyScore:          0.2,
		HasConsistencyData:        true,
		CurrentScore:              90,
		PreviousScore:             40,
		HasScorePair:              true,
		ComplianceScore:           0.3,
		HasComplianceData:         true,
	}, now)

	assert.Len(t, anomalies, 4)
}
