package repository

import (
	"github.com/lingostep/placement/internal/model"
	"gorm.io/gorm"
)

// QuestionCounts is the number of questions a test has, per variant.
type QuestionCounts struct {
	MultipleChoice int64
	TrueFalse      int64
	Writing        int64
}

func (c QuestionCounts) Total() int64 {
	return c.MultipleChoice + c.TrueFalse + c.Writing
}

type QuestionRepository interface {
	FindMultipleChoice(id uint) (*model.MultipleChoiceQuestion, error)
	FindTrueFalse(id uint) (*model.TrueFalseQuestion, error)
	FindWriting(id uint) (*model.WritingQuestion, error)
	CountByTest(testID uint) (QuestionCounts, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindMultipleChoice(id uint) (*model.MultipleChoiceQuestion, error) {
	var q model.MultipleChoiceQuestion
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) FindTrueFalse(id uint) (*model.TrueFalseQuestion, error) {
	var q model.TrueFalseQuestion
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) FindWriting(id uint) (*model.WritingQuestion, error) {
	var q model.WritingQuestion
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) CountByTest(testID uint) (QuestionCounts, error) {
	var counts QuestionCounts
	if err := r.db.Model(&model.MultipleChoiceQuestion{}).Where("test_id = ?", testID).Count(&counts.MultipleChoice).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&model.TrueFalseQuestion{}).Where("test_id = ?", testID).Count(&counts.TrueFalse).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&model.WritingQuestion{}).Where("test_id = ?", testID).Count(&counts.Writing).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
