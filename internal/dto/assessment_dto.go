package dto

import (
	"github.com/coursekit/assess-api/internal/models"
)

// QuestionInput is one authored question inside an assessment create request.
// Type defaults to short-answer when omitted; choices only apply to
// multiple-choice questions.
type QuestionInput struct {
	Text          string   `json:"question_text" validate:"required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Type          string   `json:"type" validate:"omitempty,oneof=short-answer multiple-choice"`
	Choices       []string `json:"choices"`
}

// AssessmentCreateRequest describes the payload for authoring an assessment.
type AssessmentCreateRequest struct {
	CourseID  uint            `json:"courseId" validate:"required"`
	Title     string          `json:"title" validate:"required"`
	Questions []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

// AssessmentCreatedResponse carries the identifier of a newly authored assessment.
type AssessmentCreatedResponse struct {
	AssessmentID uint `json:"assessmentId"`
}

// QuestionResponse is the serialized representation of a question.
type QuestionResponse struct {
	ID            uint     `json:"id"`
	Text          string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	Type          string   `json:"type"`
	Choices       []string `json:"choices"`
}

// AssessmentResponse is an assessment with its questions in authored order.
type AssessmentResponse struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

// NewQuestionResponse converts a model into a DTO.
func NewQuestionResponse(model models.Question) QuestionResponse {
	choices := make([]string, 0, len(model.Choices))
	choices = append(choices, model.Choices...)

	questionType := model.Type
	if questionType == "" {
		questionType = models.QuestionTypeShortAnswer
	}

	return QuestionResponse{
		ID:            model.ID,
		Text:          model.Text,
		CorrectAnswer: model.CorrectAnswer,
		Type:          questionType,
		Choices:       choices,
	}
}

// NewAssessmentResponse converts a model into a DTO.
func NewAssessmentResponse(model models.Assessment) AssessmentResponse {
	questions := make([]QuestionResponse, 0, len(model.Questions))
	for _, question := range model.Questions {
		questions = append(questions, NewQuestionResponse(question))
	}

	return AssessmentResponse{
		ID:        model.ID,
		Title:     model.Title,
		Questions: questions,
	}
}

// NewAssessmentResponseSlice converts a slice of models into DTOs.
func NewAssessmentResponseSlice(assessments []models.Assessment) []AssessmentResponse {
	responses := make([]AssessmentResponse, 0, len(assessments))
	for _, assessment := range assessments {
		responses = append(responses, NewAssessmentResponse(assessment))
	}

	return responses
}
