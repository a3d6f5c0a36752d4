// Package service implements the domain services of the risk intelligence
// engine: factor aggregation, trend analysis, anomaly detection, forecasting
// and vendor rating.
package service

import (
	"strings"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// Factor weights. Asset factors sum to 1.0; vendor and relationship factors
// are applied on top of them in combined assessments, so the raw sum can
// exceed 100 before clamping. That over-contribution is intentional and the
// clamp-after-sum behavior is load-bearing for callers.
const (
	weightAssetCriticality   = 0.30
	weightBusinessImpact     = 0.25
	weightDataClassification = 0.20
	weightComplianceReqs     = 0.15
	weightSecurityControls   = 0.10

	weightVendorRiskScore  = 0.40
	weightVendorCompliance = 0.30
	weightVendorIndustry   = 0.30

	weightRelCriticality = 0.40
	weightDataAccess     = 0.30
	weightIntegration    = 0.30
)

func criticalityScore(level string) float64 {
	switch strings.ToLower(level) {
	case "critical":
		return 90
	case "high":
		return 70
	case "medium":
		return 50
	case "low":
		return 20
	default:
		return 0
	}
}

func businessImpactScore(level string) float64 {
	switch strings.ToLower(level) {
	case "critical":
		return 85
	case "high":
		return 65
	case "medium":
		return 45
	case "low":
		return 25
	default:
		return 0
	}
}

func dataClassificationScore(classification string) float64 {
	switch strings.ToLower(classification) {
	case "restricted":
		return 90
	case "confidential":
		return 70
	case "internal":
		return 40
	case "public":
		return 10
	default:
		return 0
	}
}

func complianceRequirementsScore(requirements []string) float64 {
	if len(requirements) == 0 {
		return 0
	}
	set := make(map[string]bool, len(requirements))
	for _, r := range requirements {
		set[strings.ToUpper(r)] = true
	}
	switch {
	case set["PCI_DSS"] || set["SOX"]:
		return 80
	case set["GDPR"] || set["CCPA"]:
		return 70
	case len(requirements) > 2:
		return 60
	default:
		return 40
	}
}

// securityControlsScore is inverse: more controls mean lower risk.
func securityControlsScore(controls []string) float64 {
	n := len(controls)
	switch {
	case n == 0:
		return 100
	case n >= 5:
		return 20
	case n >= 3:
		return 40
	case n >= 1:
		return 60
	default:
		return 80
	}
}

func vendorComplianceScore(status models.ComplianceStatus) float64 {
	switch status {
	case models.ComplianceCompliant:
		return 20
	case models.CompliancePartial:
		return 60
	case models.ComplianceNonCompliant:
		return 90
	default:
		return 50
	}
}

func industryRiskScore(industry string) float64 {
	switch industry {
	case "Financial", "Healthcare", "Government", "Defense":
		return 70
	case "Technology", "Energy", "Manufacturing":
		return 40
	default:
		return 20
	}
}

func dataAccessScore(level string) float64 {
	switch strings.ToLower(level) {
	case "full_access":
		return 90
	case "read_write":
		return 70
	case "read_only":
		return 40
	case "none":
		return 10
	default:
		return 50
	}
}

func integrationTypeScore(integration string) float64 {
	switch strings.ToLower(integration) {
	case "direct_access":
		return 90
	case "database":
		return 80
	case "api":
		return 60
	case "web_service":
		return 50
	case "file_transfer":
		return 40
	case "cloud_service":
		return 30
	default:
		return 50
	}
}

// AssetFactors builds the standard factor set for an organizational asset.
func AssetFactors(asset *models.AssetProfile) []models.RiskFactor {
	if asset == nil {
		return nil
	}
	return []models.RiskFactor{
		{
			Name:        "Asset Criticality",
			Category:    models.CategoryOperational,
			Weight:      weightAssetCriticality,
			Score:       criticalityScore(asset.Criticality),
			Description: "Criticality rating of the asset to business operations",
			MitigationControls: []string{
				"Implement redundancy and failover for critical assets",
				"Review asset criticality classification quarterly",
			},
		},
		{
			Name:        "Business Impact",
			Category:    models.CategoryFinancial,
			Weight:      weightBusinessImpact,
			Score:       businessImpactScore(asset.BusinessImpact),
			Description: "Financial and operational impact if the asset is compromised",
			MitigationControls: []string{
				"Document business continuity procedures for this asset",
			},
		},
		{
			Name:        "Data Classification",
			Category:    models.CategorySecurity,
			Weight:      weightDataClassification,
			Score:       dataClassificationScore(asset.DataClassification),
			Description: "Sensitivity of the data the asset stores or processes",
			MitigationControls: []string{
				"Apply encryption at rest and in transit for sensitive data",
				"Restrict access to classified data on a need-to-know basis",
			},
		},
		{
			Name:        "Compliance Requirements",
			Category:    models.CategoryCompliance,
			Weight:      weightComplianceReqs,
			Score:       complianceRequirementsScore(asset.ComplianceRequirements),
			Description: "Regulatory frameworks the asset falls under",
			Evidence:    asset.ComplianceRequirements,
			MitigationControls: []string{
				"Schedule compliance audits for in-scope frameworks",
			},
		},
		{
			Name:        "Security Controls Coverage",
			Category:    models.CategorySecurity,
			Weight:      weightSecurityControls,
			Score:       securityControlsScore(asset.SecurityControls),
			Description: "Breadth of protective controls deployed on the asset",
			Evidence:    asset.SecurityControls,
			MitigationControls: []string{
				"Deploy baseline security controls (MFA, EDR, logging)",
			},
		},
	}
}

// VendorFactors builds the standard factor set for a third-party vendor.
func VendorFactors(vendor *models.VendorProfile) []models.RiskFactor {
	if vendor == nil {
		return nil
	}
	return []models.RiskFactor{
		{
			Name:        "Vendor Risk Score",
			Category:    models.CategorySecurity,
			Weight:      weightVendorRiskScore,
			Score:       vendor.OverallRiskScore,
			Description: "Vendor's current overall risk score",
			MitigationControls: []string{
				"Request an updated security questionnaire from the vendor",
			},
		},
		{
			Name:        "Vendor Compliance Status",
			Category:    models.CategoryCompliance,
			Weight:      weightVendorCompliance,
			Score:       vendorComplianceScore(vendor.ComplianceStatus),
			Description: "Vendor's declared compliance posture",
			MitigationControls: []string{
				"Require remediation plan for outstanding compliance findings",
			},
		},
		{
			Name:        "Industry Risk",
			Category:    models.CategoryReputational,
			Weight:      weightVendorIndustry,
			Score:       industryRiskScore(vendor.Industry),
			Description: "Inherent risk of the vendor's industry sector",
			MitigationControls: []string{
				"Monitor sector-specific threat intelligence feeds",
			},
		},
	}
}

// RelationshipFactors builds the standard factor set for an asset-vendor
// relationship.
func RelationshipFactors(rel *models.RelationshipProfile) []models.RiskFactor {
	if rel == nil {
		return nil
	}
	return []models.RiskFactor{
		{
			Name:        "Relationship Criticality",
			Category:    models.CategoryOperational,
			Weight:      weightRelCriticality,
			Score:       criticalityScore(rel.CriticalityToAsset),
			Description: "How critical the vendor relationship is to the asset",
			MitigationControls: []string{
				"Identify alternative vendors for critical dependencies",
			},
		},
		{
			Name:        "Data Access Level",
			Category:    models.CategorySecurity,
			Weight:      weightDataAccess,
			Score:       dataAccessScore(rel.DataAccessLevel),
			Description: "Level of data access granted to the vendor",
			MitigationControls: []string{
				"Reduce vendor data access to the minimum required",
				"Review access grants on a fixed schedule",
			},
		},
		{
			Name:        "Integration Type",
			Category:    models.CategorySecurity,
			Weight:      weightIntegration,
			Score:       integrationTypeScore(rel.IntegrationType),
			Description: "Risk inherent to the technical integration pattern",
			MitigationControls: []string{
				"Segment vendor integrations from internal networks",
			},
		},
	}
}
