package model

import (
	"time"

	"gorm.io/gorm"
)

// Question kind tags carried on submitted answers. A question id is only
// meaningful together with its kind; ids are not unique across variants.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeWriting        = "writing"
)

type MultipleChoiceQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json"`
	CorrectAnswer string         `json:"correct_answer,omitempty" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TrueFalseGroup holds a shared reading passage for a set of true/false
// questions. Ungrouped true/false questions have no group.
type TrueFalseGroup struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	TestID    uint                `json:"test_id" gorm:"not null;index"`
	Passage   string              `json:"passage" gorm:"type:text"`
	Questions []TrueFalseQuestion `json:"questions,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`
}

type TrueFalseQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	GroupID       *uint          `json:"group_id,omitempty" gorm:"index"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	CorrectAnswer bool           `json:"correct_answer"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type WritingQuestion struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	TestID    uint           `json:"test_id" gorm:"not null;index"`
	Question  string         `json:"question" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
