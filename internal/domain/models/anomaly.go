package models

import "time"

// AnomalyType classifies a detected behavioral deviation.
type AnomalyType string

const (
	AnomalyUnusualResponse  AnomalyType = "unusual_response"
	AnomalyPatternDeviation AnomalyType = "pattern_deviation"
	AnomalyRiskSpike        AnomalyType = "risk_spike"
	AnomalyComplianceGap    AnomalyType = "compliance_gap"
)

// Severity grades an anomaly.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AnomalyDetection is a write-once fact describing one detected deviation.
// The detector appends these; nothing ever mutates or deletes them.
type AnomalyDetection struct {
	ID               string      `json:"id"`
	Type             AnomalyType `json:"anomaly_type"`
	Severity         Severity    `json:"severity"`
	Description      string      `json:"description"`
	Confidence       float64     `json:"confidence"`
	AffectedEntities []string    `json:"affected_entities"`
	Recommendations  []string    `json:"recommendations,omitempty"`
	DetectedAt       time.Time   `json:"detected_at"`
}
