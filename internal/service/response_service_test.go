package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/models"
	"github.com/coursekit/assess-api/internal/repository"
)

func setupResponseService(t *testing.T) (ResponseService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Assessment{}, &models.Question{}, &models.StudentResponse{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewResponseService(repository.NewResponseRepository(db), validate, zerolog.Nop())

	return svc, db
}

func TestResponseServiceSubmitOverwritesPriorAnswer(t *testing.T) {
	svc, db := setupResponseService(t)

	userID := uint(301)
	questionID := uint(8001)

	require.NoError(t, svc.Submit(context.Background(), userID, dto.ResponseSubmitRequest{QuestionID: questionID, StudentAnswer: "5"}))
	require.NoError(t, svc.Submit(context.Background(), userID, dto.ResponseSubmitRequest{QuestionID: questionID, StudentAnswer: "4"}))

	var stored []models.StudentResponse
	require.NoError(t, db.Where("user_id = ? AND question_id = ?", userID, questionID).Find(&stored).Error)
	require.Len(t, stored, 1)
	require.Equal(t, "4", stored[0].StudentAnswer)
}

func TestResponseServiceSubmitRejectsIncompletePayloads(t *testing.T) {
	svc, _ := setupResponseService(t)

	err := svc.Submit(context.Background(), 1, dto.ResponseSubmitRequest{StudentAnswer: "4"})
	require.Error(t, err)

	err = svc.Submit(context.Background(), 1, dto.ResponseSubmitRequest{QuestionID: 5})
	require.Error(t, err)
}
