package repository

import (
	"time"

	"github.com/lingostep/placement/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.TestAttempt) error
	FindByAccessID(accessID string) (*model.TestAttempt, error)
	FindAllByStudent(studentID uint) ([]model.TestAttempt, error)
	// MarkCompleted sets the completion flag and records how many writing
	// answers are still waiting on background evaluation.
	MarkCompleted(attemptID uint, pendingWriting int) error
	// FinishWriting decrements the pending counter for one persisted writing
	// record and flips the attempt to completed once the counter reaches zero.
	FinishWriting(attemptID uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.TestAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByAccessID(accessID string) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.Where("access_id = ?", accessID).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByStudent(studentID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.Where("student_id = ?", studentID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) MarkCompleted(attemptID uint, pendingWriting int) error {
	status := model.AttemptStatusCompleted
	if pendingWriting > 0 {
		status = model.AttemptStatusGradingPending
	}
	now := time.Now()
	return r.db.Model(&model.TestAttempt{}).Where("id = ?", attemptID).
		Updates(map[string]interface{}{
			"is_completed":    true,
			"status":          status,
			"pending_writing": pendingWriting,
			"submitted_at":    &now,
		}).Error
}

func (r *attemptRepository) FinishWriting(attemptID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.TestAttempt{}).
			Where("id = ? AND pending_writing > 0", attemptID).
			UpdateColumn("pending_writing", gorm.Expr("pending_writing - 1")).Error
		if err != nil {
			return err
		}
		return tx.Model(&model.TestAttempt{}).
			Where("id = ? AND pending_writing = 0 AND is_completed = ?", attemptID, true).
			Update("status", model.AttemptStatusCompleted).Error
	})
}
