package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assessment is a titled set of questions attached to a single course.
type Assessment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CourseID  uint       `gorm:"not null;index" json:"course_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Questions []Question `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"questions"`
}

const (
	// QuestionTypeShortAnswer is a free-text question graded by exact match.
	QuestionTypeShortAnswer = "short-answer"
	// QuestionTypeMultipleChoice restricts answers to one of the listed choices.
	QuestionTypeMultipleChoice = "multiple-choice"
)

// Question belongs to an assessment. Position fixes the authored order;
// choices are stored as a JSON column but exposed as an ordered string slice.
type Question struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	AssessmentID  uint                        `gorm:"not null;index" json:"assessment_id"`
	Position      int                         `gorm:"not null" json:"position"`
	Text          string                      `gorm:"type:text;not null" json:"question_text"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correct_answer"`
	Type          string                      `gorm:"size:32;not null;default:short-answer" json:"type"`
	Choices       datatypes.JSONSlice[string] `gorm:"type:json" json:"choices"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// HasValidChoices reports whether a multiple-choice question lists at least
// two choices and includes its own correct answer. Always true for other types.
func (q Question) HasValidChoices() bool {
	if q.Type != QuestionTypeMultipleChoice {
		return true
	}

	if len(q.Choices) < 2 {
		return false
	}

	for _, choice := range q.Choices {
		if choice == q.CorrectAnswer {
			return true
		}
	}

	return false
}
