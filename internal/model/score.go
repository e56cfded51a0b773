package model

import (
	"time"

	"gorm.io/gorm"
)

// PlacementScore is the summary written once per completed grading run.
type PlacementScore struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptID       uint           `json:"attempt_id" gorm:"not null;index"`
	StudentID       uint           `json:"student_id" gorm:"not null;index"`
	TestID          uint           `json:"test_id" gorm:"not null;index"`
	TotalScore      float64        `json:"total_score"`
	PercentageScore float64        `json:"percentage_score"`
	Level           string         `json:"level" gorm:"not null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
