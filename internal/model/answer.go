package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentAnswer is one graded answer. The (attempt, question type, question id)
// key makes resubmission an upsert rather than a duplicate insert.
type StudentAnswer struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptID       uint           `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	StudentID       uint           `json:"student_id" gorm:"not null;index"`
	TestID          uint           `json:"test_id" gorm:"not null;index"`
	QuestionType    string         `json:"question_type" gorm:"not null;uniqueIndex:idx_attempt_question"`
	QuestionID      uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	StudentAnswer   string         `json:"student_answer" gorm:"type:text;not null"`
	IsCorrect       *bool          `json:"is_correct,omitempty"`
	Score           float64        `json:"score"`
	WritingFeedback string         `json:"writing_feedback,omitempty" gorm:"type:text"`
	SubmittedAt     time.Time      `json:"submitted_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
