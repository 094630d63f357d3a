package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/assess-api/internal/dto"
	"github.com/coursekit/assess-api/internal/models"
	"github.com/coursekit/assess-api/internal/repository"
)

func TestProgressHandlerSubmitAndReportFlow(t *testing.T) {
	userID := uint(900)
	app, db := setupAssessmentApp(t, userID, "student")

	course := models.Course{Title: "Flow"}
	require.NoError(t, db.Create(&course).Error)

	assessment := models.Assessment{
		CourseID: course.ID,
		Title:    "Quiz1",
		Questions: []models.Question{
			{Text: "2+2?", CorrectAnswer: "4", Type: models.QuestionTypeShortAnswer},
			{Text: "3+3?", CorrectAnswer: "6", Type: models.QuestionTypeShortAnswer},
		},
	}
	require.NoError(t, repository.NewAssessmentRepository(db).CreateWithQuestions(context.Background(), &assessment))

	submitResp := postJSON(t, app, "/api/v1/assessments/responses", dto.ResponseSubmitRequest{
		QuestionID:    assessment.Questions[0].ID,
		StudentAnswer: "4",
	})
	require.Equal(t, fiber.StatusCreated, submitResp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/progress/"+itoa(course.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                     `json:"success"`
		Data    []dto.AssessmentProgress `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Len(t, body.Data, 1)

	quiz := body.Data[0]
	require.Len(t, quiz.Questions, 2)
	require.NotNil(t, quiz.Questions[0].StudentAnswer)
	require.Equal(t, "4", *quiz.Questions[0].StudentAnswer)
	require.NotNil(t, quiz.Questions[0].IsCorrect)
	require.True(t, *quiz.Questions[0].IsCorrect)
	require.Nil(t, quiz.Questions[1].StudentAnswer)
	require.Nil(t, quiz.Questions[1].IsCorrect)
	require.Equal(t, 1, quiz.Score.Answered)
	require.InDelta(t, 50.0, quiz.Score.Percentage, 0.01)
}

func TestProgressHandlerSubmitRejectsIncompletePayload(t *testing.T) {
	app, _ := setupAssessmentApp(t, 901, "student")

	resp := postJSON(t, app, "/api/v1/assessments/responses", dto.ResponseSubmitRequest{StudentAnswer: "4"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProgressHandlerRequiresUserContext(t *testing.T) {
	app, _ := setupAssessmentApp(t, 0, "student")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/progress/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
