package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/coursekit/assess-api/internal/models"
)

// AssessmentRepository defines persistence operations for assessments and their questions.
type AssessmentRepository interface {
	CreateWithQuestions(ctx context.Context, assessment *models.Assessment) error
	ListByCourse(ctx context.Context, courseID uint) ([]models.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository instantiates a GORM-backed repository.
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// CreateWithQuestions inserts the assessment row and its question batch in a
// single transaction. Positions are assigned from input order so the authored
// order survives regardless of row insertion order.
func (r *assessmentRepository) CreateWithQuestions(ctx context.Context, assessment *models.Assessment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions := assessment.Questions
		assessment.Questions = nil

		if err := tx.Omit("Questions").Create(assessment).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].AssessmentID = assessment.ID
			questions[i].Position = i + 1
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}

		assessment.Questions = questions
		return nil
	})
}

func (r *assessmentRepository) ListByCourse(ctx context.Context, courseID uint) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}

	return assessments, nil
}
