package postgres

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
)

// assessmentDBM is the database model for the questionnaire assessments table.
type assessmentDBM struct {
	ID          string `gorm:"primaryKey"`
	SubjectID   string `gorm:"index"`
	Score       float64
	Status      string
	SentAt      *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func (assessmentDBM) TableName() string { return "assessments" }

func (dbm *assessmentDBM) toDomain() models.AssessmentRecord {
	return models.AssessmentRecord{
		ID:          dbm.ID,
		Score:       dbm.Score,
		Status:      dbm.Status,
		SentAt:      dbm.SentAt,
		CompletedAt: dbm.CompletedAt,
		CreatedAt:   dbm.CreatedAt,
	}
}

// riskAssessmentDBM is the database model for computed risk assessments.
type riskAssessmentDBM struct {
	ID              string `gorm:"primaryKey"`
	SubjectID       string `gorm:"index"`
	AssetID         string
	VendorID        string
	RelationshipID  string
	AssessmentType  string
	Factors         []byte `gorm:"type:jsonb"`
	CalculatedScore int
	RiskLevel       string
	Recommendations stringList `gorm:"type:jsonb"`
	NextDue         time.Time
	AssessedBy      string
	AssessedAt      time.Time
	Status          string
	CreatedAt       time.Time
}

func (riskAssessmentDBM) TableName() string { return "risk_assessments" }

func fromRiskAssessment(a *models.RiskAssessment) (*riskAssessmentDBM, error) {
	factors, err := json.Marshal(a.Factors)
	if err != nil {
		return nil, err
	}
	return &riskAssessmentDBM{
		ID:              a.ID,
		SubjectID:       a.Subject.Primary(),
		AssetID:         a.Subject.AssetID,
		VendorID:        a.Subject.VendorID,
		RelationshipID:  a.Subject.RelationshipID,
		AssessmentType:  string(a.Type),
		Factors:         factors,
		CalculatedScore: a.CalculatedScore,
		RiskLevel:       string(a.RiskLevel),
		Recommendations: a.Recommendations,
		NextDue:         a.NextDue,
		AssessedBy:      a.AssessedBy,
		AssessedAt:      a.AssessedAt,
		Status:          string(a.Status),
		CreatedAt:       a.AssessedAt,
	}, nil
}

// AssessmentRepository is the PostgreSQL implementation of
// repository.AssessmentRepository.
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates an AssessmentRepository.
func NewAssessmentRepository(db *gorm.DB) repository.AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// ListAssessments returns the newest assessment records first.
func (r *AssessmentRepository) ListAssessments(ctx context.Context, subjectID string, limit int) ([]models.AssessmentRecord, error) {
	var dbms []assessmentDBM
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&dbms).Error
	if err != nil {
		return nil, err
	}
	records := make([]models.AssessmentRecord, 0, len(dbms))
	for i := range dbms {
		records = append(records, dbms[i].toDomain())
	}
	return records, nil
}

// ListRiskScores returns the newest computed risk scores first.
func (r *AssessmentRepository) ListRiskScores(ctx context.Context, subjectID string, limit int) ([]models.RiskScoreRecord, error) {
	var dbms []riskAssessmentDBM
	err := r.db.WithContext(ctx).
		Select("calculated_score", "created_at").
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&dbms).Error
	if err != nil {
		return nil, err
	}
	records := make([]models.RiskScoreRecord, 0, len(dbms))
	for _, dbm := range dbms {
		records = append(records, models.RiskScoreRecord{
			Score:     float64(dbm.CalculatedScore),
			CreatedAt: dbm.CreatedAt,
		})
	}
	return records, nil
}

// SaveRiskAssessment appends a computed assessment.
func (r *AssessmentRepository) SaveRiskAssessment(ctx context.Context, assessment *models.RiskAssessment) error {
	dbm, err := fromRiskAssessment(assessment)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(dbm).Error
}
