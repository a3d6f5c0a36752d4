package repository

import (
	"context"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
)

// AssessmentRepository supplies assessment history and accepts newly computed
// risk assessments. History listings are ordered newest first.
type AssessmentRepository interface {
	// ListAssessments returns up to limit questionnaire assessment records
	// for the subject, newest first.
	ListAssessments(ctx context.Context, subjectID string, limit int) ([]models.AssessmentRecord, error)

	// ListRiskScores returns up to limit historical risk assessment scores
	// for the subject, newest first.
	ListRiskScores(ctx context.Context, subjectID string, limit int) ([]models.RiskScoreRecord, error)

	// SaveRiskAssessment appends a computed assessment. Assessments are
	// insert-only; approved or rejected records are never rewritten.
	SaveRiskAssessment(ctx context.Context, assessment *models.RiskAssessment) error
}
