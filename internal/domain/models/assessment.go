package models

import "time"

// AssessmentType identifies which subject kinds contributed to an assessment.
type AssessmentType string

const (
	AssessmentTypeAsset        AssessmentType = "asset_risk"
	AssessmentTypeVendor       AssessmentType = "vendor_risk"
	AssessmentTypeRelationship AssessmentType = "relationship_risk"
	AssessmentTypeCombined     AssessmentType = "combined_risk"
)

// AssessmentStatus is the lifecycle state of a risk assessment. Once approved
// or rejected the assessment becomes an immutable historical record.
type AssessmentStatus string

const (
	AssessmentStatusDraft         AssessmentStatus = "draft"
	AssessmentStatusPendingReview AssessmentStatus = "pending_review"
	AssessmentStatusApproved      AssessmentStatus = "approved"
	AssessmentStatusRejected      AssessmentStatus = "rejected"
)

// SubjectRef identifies the entity (or combination of entities) an assessment
// applies to. At least one id must be set.
type SubjectRef struct {
	AssetID        string `json:"asset_id,omitempty"`
	VendorID       string `json:"vendor_id,omitempty"`
	RelationshipID string `json:"relationship_id,omitempty"`
}

// IsEmpty reports whether no subject id is set.
func (s SubjectRef) IsEmpty() bool {
	return s.AssetID == "" && s.VendorID == "" && s.RelationshipID == ""
}

// Primary returns the most specific id present, preferring the relationship.
func (s SubjectRef) Primary() string {
	if s.RelationshipID != "" {
		return s.RelationshipID
	}
	if s.VendorID != "" {
		return s.VendorID
	}
	return s.AssetID
}

// RiskAssessment is a point-in-time weighted aggregation of risk factors for
// one subject.
type RiskAssessment struct {
	ID              string           `json:"id"`
	Subject         SubjectRef       `json:"subject"`
	Type            AssessmentType   `json:"assessment_type"`
	Factors         []RiskFactor     `json:"factors"`
	CalculatedScore int              `json:"calculated_score"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	Recommendations []string         `json:"recommendations,omitempty"`
	NextDue         time.Time        `json:"next_due"`
	AssessedBy      string           `json:"assessed_by,omitempty"`
	AssessedAt      time.Time        `json:"assessed_at"`
	Status          AssessmentStatus `json:"status"`
}
