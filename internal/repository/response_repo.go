package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coursekit/assess-api/internal/models"
)

// ResponseRepository defines persistence operations for student responses.
type ResponseRepository interface {
	Upsert(ctx context.Context, response *models.StudentResponse) error
	ListByUserAndCourse(ctx context.Context, userID, courseID uint) ([]models.StudentResponse, error)
}

type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository instantiates a GORM-backed repository.
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// Upsert stores the response, overwriting any prior answer for the same
// (user, question) pair in a single statement. Last write wins.
func (r *responseRepository) Upsert(ctx context.Context, response *models.StudentResponse) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"student_answer", "submitted_at"}),
	}).Create(response).Error
}

func (r *responseRepository) ListByUserAndCourse(ctx context.Context, userID, courseID uint) ([]models.StudentResponse, error) {
	var responses []models.StudentResponse
	err := r.db.WithContext(ctx).
		Joins("JOIN questions ON questions.id = student_responses.question_id").
		Joins("JOIN assessments ON assessments.id = questions.assessment_id").
		Where("student_responses.user_id = ?", userID).
		Where("assessments.course_id = ?", courseID).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}

	return responses, nil
}
