package dto

import "time"

// ResponseSubmitRequest describes the payload for recording a student answer.
type ResponseSubmitRequest struct {
	QuestionID    uint   `json:"questionId" validate:"required"`
	StudentAnswer string `json:"studentAnswer" validate:"required"`
}

// QuestionProgress is one question in a progress report. StudentAnswer,
// SubmittedAt and IsCorrect are nil when the question has not been answered,
// which scoring must keep distinct from an incorrect answer.
type QuestionProgress struct {
	ID            uint       `json:"id"`
	Text          string     `json:"question_text"`
	CorrectAnswer string     `json:"correct_answer"`
	Type          string     `json:"type"`
	Choices       []string   `json:"choices"`
	StudentAnswer *string    `json:"student_answer"`
	SubmittedAt   *time.Time `json:"submitted_at"`
	IsCorrect     *bool      `json:"is_correct"`
}

// AssessmentScore summarizes one assessment for a single student.
type AssessmentScore struct {
	TotalQuestions int     `json:"total_questions"`
	Answered       int     `json:"answered"`
	Correct        int     `json:"correct"`
	Percentage     float64 `json:"percentage"`
}

// AssessmentProgress is one assessment in a progress report.
type AssessmentProgress struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionProgress `json:"questions"`
	Score     AssessmentScore    `json:"score"`
}
