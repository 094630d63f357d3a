package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coursekit/assess-api/internal/models"
)

func TestResponseRepositoryUpsertLastWriteWins(t *testing.T) {
	db := setupAssessmentTestDB(t)
	repo := NewResponseRepository(db)

	course := models.Course{Title: "Math"}
	require.NoError(t, db.Create(&course).Error)

	assessment := models.Assessment{CourseID: course.ID, Title: "Quiz"}
	require.NoError(t, NewAssessmentRepository(db).CreateWithQuestions(context.Background(), &assessment))

	question := models.Question{AssessmentID: assessment.ID, Position: 1, Text: "2+2?", CorrectAnswer: "4"}
	require.NoError(t, db.Create(&question).Error)

	userID := uint(42)
	first := models.StudentResponse{UserID: userID, QuestionID: question.ID, StudentAnswer: "5", SubmittedAt: time.Now().UTC().Add(-time.Minute)}
	require.NoError(t, repo.Upsert(context.Background(), &first))

	second := models.StudentResponse{UserID: userID, QuestionID: question.ID, StudentAnswer: "4", SubmittedAt: time.Now().UTC()}
	require.NoError(t, repo.Upsert(context.Background(), &second))

	var stored []models.StudentResponse
	require.NoError(t, db.Where("user_id = ? AND question_id = ?", userID, question.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	require.Equal(t, "4", stored[0].StudentAnswer)
	require.True(t, stored[0].SubmittedAt.After(first.SubmittedAt))
}

func TestResponseRepositoryListByUserAndCourseScopesJoins(t *testing.T) {
	db := setupAssessmentTestDB(t)
	repo := NewResponseRepository(db)
	assessments := NewAssessmentRepository(db)

	course := models.Course{Title: "Physics"}
	other := models.Course{Title: "Biology"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&other).Error)

	inCourse := models.Assessment{
		CourseID:  course.ID,
		Title:     "Mechanics",
		Questions: []models.Question{{Text: "F=?", CorrectAnswer: "ma"}},
	}
	require.NoError(t, assessments.CreateWithQuestions(context.Background(), &inCourse))

	elsewhere := models.Assessment{
		CourseID:  other.ID,
		Title:     "Cells",
		Questions: []models.Question{{Text: "Unit of life?", CorrectAnswer: "cell"}},
	}
	require.NoError(t, assessments.CreateWithQuestions(context.Background(), &elsewhere))

	userID := uint(7)
	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(context.Background(), &models.StudentResponse{UserID: userID, QuestionID: inCourse.Questions[0].ID, StudentAnswer: "ma", SubmittedAt: now}))
	require.NoError(t, repo.Upsert(context.Background(), &models.StudentResponse{UserID: userID, QuestionID: elsewhere.Questions[0].ID, StudentAnswer: "cell", SubmittedAt: now}))
	require.NoError(t, repo.Upsert(context.Background(), &models.StudentResponse{UserID: userID + 1, QuestionID: inCourse.Questions[0].ID, StudentAnswer: "mv", SubmittedAt: now}))

	responses, err := repo.ListByUserAndCourse(context.Background(), userID, course.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Equal(t, inCourse.Questions[0].ID, responses[0].QuestionID)
	require.Equal(t, "ma", responses[0].StudentAnswer)
}
