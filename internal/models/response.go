package models

import "time"

// StudentResponse stores the latest answer one user gave to one question.
// The composite unique index makes resubmission an overwrite, never a duplicate.
type StudentResponse struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_responses_user_question" json:"user_id"`
	QuestionID    uint      `gorm:"not null;uniqueIndex:idx_responses_user_question" json:"question_id"`
	StudentAnswer string    `gorm:"type:text;not null" json:"student_answer"`
	SubmittedAt   time.Time `gorm:"not null" json:"submitted_at"`
}

// IsCorrectFor reports whether the stored answer matches the question's
// correct answer. Comparison is exact and case-sensitive; no normalization.
func (r StudentResponse) IsCorrectFor(q Question) bool {
	return r.StudentAnswer == q.CorrectAnswer
}
