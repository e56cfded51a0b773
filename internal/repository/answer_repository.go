package repository

import (
	"github.com/lingostep/placement/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// answerConflictKey makes resubmission replace the previous record for the
// same question instead of inserting a duplicate.
var answerConflictKey = clause.OnConflict{
	Columns: []clause.Column{{Name: "attempt_id"}, {Name: "question_type"}, {Name: "question_id"}},
	DoUpdates: clause.AssignmentColumns([]string{
		"student_answer", "is_correct", "score", "writing_feedback", "submitted_at", "updated_at",
	}),
}

type AnswerRepository interface {
	// UpsertBatch persists all objective answers of a submission in one
	// write round-trip.
	UpsertBatch(answers []model.StudentAnswer) error
	Upsert(answer *model.StudentAnswer) error
	FindByAttemptID(attemptID uint) ([]model.StudentAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) UpsertBatch(answers []model.StudentAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Clauses(answerConflictKey).Create(&answers).Error
}

func (r *answerRepository) Upsert(answer *model.StudentAnswer) error {
	return r.db.Clauses(answerConflictKey).Create(answer).Error
}

func (r *answerRepository) FindByAttemptID(attemptID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.Where("attempt_id = ?", attemptID).Order("submitted_at ASC").Find(&answers).Error
	return answers, err
}
