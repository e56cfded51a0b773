package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt lifecycle. An attempt stays in grading_pending after submission
// until every writing answer has a persisted record.
const (
	AttemptStatusInProgress     = "in_progress"
	AttemptStatusGradingPending = "grading_pending"
	AttemptStatusCompleted      = "completed"
)

type TestAttempt struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	AccessID       string          `json:"access_id" gorm:"not null;uniqueIndex"`
	TestID         uint            `json:"test_id" gorm:"not null;index"`
	Test           PlacementTest   `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID      uint            `json:"student_id" gorm:"not null;index"`
	IsCompleted    bool            `json:"is_completed" gorm:"default:false"`
	Status         string          `json:"status" gorm:"default:'in_progress'"`
	PendingWriting int             `json:"pending_writing" gorm:"default:0"`
	StartedAt      time.Time       `json:"started_at" gorm:"autoCreateTime"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`
	Answers        []StudentAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}
