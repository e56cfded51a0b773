package repository

import (
	"github.com/lingostep/placement/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	// SaveResult writes the score summary and the student's new level in one
	// transaction; neither lands if either write fails.
	SaveResult(score *model.PlacementScore, level string) error
	FindByAttemptID(attemptID uint) (*model.PlacementScore, error)
	FindAllByStudent(studentID uint) ([]model.PlacementScore, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) SaveResult(score *model.PlacementScore, level string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Student{}).Where("id = ?", score.StudentID).
			Update("level", level).Error; err != nil {
			return err
		}
		return tx.Create(score).Error
	})
}

func (r *scoreRepository) FindByAttemptID(attemptID uint) (*model.PlacementScore, error) {
	var score model.PlacementScore
	if err := r.db.Where("attempt_id = ?", attemptID).Order("created_at DESC").First(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepository) FindAllByStudent(studentID uint) ([]model.PlacementScore, error) {
	var scores []model.PlacementScore
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&scores).Error
	return scores, err
}
