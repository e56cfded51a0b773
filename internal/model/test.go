package model

import (
	"time"

	"gorm.io/gorm"
)

type PlacementTest struct {
	ID               uint                     `gorm:"primarykey" json:"id"`
	Name             string                   `json:"name" gorm:"not null;uniqueIndex"`
	Description      string                   `json:"description,omitempty"`
	TimeLimit        int                      `json:"time_limit"` // minutes
	MultipleChoices  []MultipleChoiceQuestion `json:"multiple_choices,omitempty" gorm:"foreignKey:TestID"`
	TrueFalseGroups  []TrueFalseGroup         `json:"true_false_groups,omitempty" gorm:"foreignKey:TestID"`
	WritingQuestions []WritingQuestion        `json:"writing_questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
	DeletedAt        gorm.DeletedAt           `gorm:"index" json:"-"`
}
