// Package dto defines the request and response shapes of the HTTP API.
package dto

// ScoreRequest asks for a fresh risk score computation. At least one of the
// subject ids must be set.
type ScoreRequest struct {
	AssetID        string `json:"asset_id,omitempty"`
	VendorID       string `json:"vendor_id,omitempty"`
	RelationshipID string `json:"relationship_id,omitempty"`
	AssessedBy     string `json:"assessed_by,omitempty"`
}

// RatingRecomputeRequest triggers a vendor rating recomputation. The body is
// currently empty; the vendor id comes from the path.
type RatingRecomputeRequest struct{}

// TrendQuery carries the validated query parameters of a trend request.
type TrendQuery struct {
	OrgID  string `form:"org_id" json:"org_id"`
	Window string `form:"window" json:"window"`
}
