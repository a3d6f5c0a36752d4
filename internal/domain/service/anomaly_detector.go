package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// Detection thresholds. These are the contract; the signals feeding them are
// aggregated from real history by the application layer.
const (
	responseTimeBlowupFactor = 2.0
	consistencyFloor         = 0.5
	riskSpikeDelta           = 20.0
	complianceGapFloor       = 0.7
)

// AnomalySignals carries the aggregated metrics the detector inspects. Each
// Has* flag marks whether enough history existed to compute the paired
// metric; a check with missing data is skipped, never an error.
type AnomalySignals struct {
	VendorID string

	CurrentAvgResponseDays    float64
	HistoricalAvgResponseDays float64
	HasResponseData           bool

	ConsistencyScore   float64
	HasConsistencyData bool

	CurrentScore  float64
	PreviousScore float64
	HasScorePair  bool

	ComplianceScore   float64 // fraction in [0,1]
	HasComplianceData bool
}

// AnomalyDetector runs four independent heuristic checks over a vendor's
// recent behavior and emits write-once anomaly facts.
type AnomalyDetector struct{}

// NewAnomalyDetector creates an AnomalyDetector.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{}
}

// Detect evaluates all checks against the supplied signals. The checks are
// independent: one firing never suppresses another.
func (d *AnomalyDetector) Detect(signals AnomalySignals, now time.Time) []models.AnomalyDetection {
	var anomalies []models.AnomalyDetection

	if signals.HasResponseData && signals.HistoricalAvgResponseDays > 0 &&
		signals.CurrentAvgResponseDays > responseTimeBlowupFactor*signals.HistoricalAvgResponseDays {
		anomalies = append(anomalies, models.AnomalyDetection{
			ID:       uuid.NewString(),
			Type:     models.AnomalyUnusualResponse,
			Severity: models.SeverityMedium,
			Description: fmt.Sprintf(
				"Average response time of %.1f days is more than double the historical average of %.1f days",
				signals.CurrentAvgResponseDays, signals.HistoricalAvgResponseDays),
			Confidence:       0.85,
			AffectedEntities: []string{signals.VendorID},
			Recommendations: []string{
				"Contact the vendor to confirm questionnaire ownership",
				"Review whether the vendor's assessment contact has changed",
			},
			DetectedAt: now,
		})
	}

	if signals.HasConsistencyData && signals.ConsistencyScore < consistencyFloor {
		anomalies = append(anomalies, models.AnomalyDetection{
			ID:       uuid.NewString(),
			Type:     models.AnomalyPatternDeviation,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf(
				"Assessment answers show low consistency (%.2f); responses vary more than expected",
				signals.ConsistencyScore),
			Confidence:       0.92,
			AffectedEntities: []string{signals.VendorID},
			Recommendations: []string{
				"Request supporting evidence for inconsistent answers",
				"Consider an on-site or live review of the vendor's controls",
			},
			DetectedAt: now,
		})
	}

	if signals.HasScorePair && signals.CurrentScore-signals.PreviousScore > riskSpikeDelta {
		anomalies = append(anomalies, models.AnomalyDetection{
			ID:       uuid.NewString(),
			Type:     models.AnomalyRiskSpike,
			Severity: models.SeverityCritical,
			Description: fmt.Sprintf(
				"Risk score jumped from %.0f to %.0f between consecutive assessments",
				signals.PreviousScore, signals.CurrentScore),
			Confidence:       0.95,
			AffectedEntities: []string{signals.VendorID},
			Recommendations: []string{
				"Investigate the factors driving the score increase immediately",
				"Escalate to the vendor relationship owner",
			},
			DetectedAt: now,
		})
	}

	if signals.HasComplianceData && signals.ComplianceScore < complianceGapFloor {
		anomalies = append(anomalies, models.AnomalyDetection{
			ID:       uuid.NewString(),
			Type:     models.AnomalyComplianceGap,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf(
				"Compliance coverage at %.0f%% is below the %.0f%% acceptance floor",
				signals.ComplianceScore*100, complianceGapFloor*100),
			Confidence:       0.88,
			AffectedEntities: []string{signals.VendorID},
			Recommendations: []string{
				"Request a remediation plan for open compliance findings",
				"Flag the vendor for contract review",
			},
			DetectedAt: now,
		})
	}

	return anomalies
}
