package models

import "time"

// ComplianceStatus is a vendor's declared compliance posture.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	CompliancePartial      ComplianceStatus = "partial"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
)

// AssetProfile is the read model of an organizational asset consumed by the
// factor catalog.
type AssetProfile struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Criticality            string   `json:"criticality"`
	BusinessImpact         string   `json:"business_impact"`
	DataClassification     string   `json:"data_classification"`
	ComplianceRequirements []string `json:"compliance_requirements"`
	SecurityControls       []string `json:"security_controls"`
}

// VendorProfile is the read model of a third-party vendor.
type VendorProfile struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Industry             string           `json:"industry"`
	Status               string           `json:"status"`
	ComplianceStatus     ComplianceStatus `json:"compliance_status"`
	OverallRiskScore     float64          `json:"overall_risk_score"`
	SecurityPostureScore *float64         `json:"security_posture_score,omitempty"`
}

// RelationshipProfile is the read model of an asset-vendor relationship.
type RelationshipProfile struct {
	ID                 string `json:"id"`
	AssetID            string `json:"asset_id"`
	VendorID           string `json:"vendor_id"`
	CriticalityToAsset string `json:"criticality_to_asset"`
	DataAccessLevel    string `json:"data_access_level"`
	IntegrationType    string `json:"integration_type"`
}

// AssessmentRecord is one row of questionnaire assessment history for a
// vendor, newest first when listed.
type AssessmentRecord struct {
	ID          string     `json:"id"`
	Score       float64    `json:"score"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Completed reports whether the assessment reached a terminal completed state.
func (r AssessmentRecord) Completed() bool {
	return r.Status == "completed" && r.CompletedAt != nil
}

// RiskScoreRecord is one row of historical risk assessment scores.
type RiskScoreRecord struct {
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
