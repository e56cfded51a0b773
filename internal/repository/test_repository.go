package repository

import (
	"github.com/lingostep/placement/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.PlacementTest) error
	FindByID(id uint) (*model.PlacementTest, error)
	FindByIDWithQuestions(id uint) (*model.PlacementTest, error)
	FindAllWithQuestionCount() ([]struct {
		model.PlacementTest
		QuestionCount int
	}, error)
	UpdateMetadata(test *model.PlacementTest) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// Create persists the test and all its questions in one transaction.
// True/false questions carry both a test and a group foreign key, so the
// associations are created explicitly instead of through GORM's nested save.
func (r *testRepository) Create(test *model.PlacementTest) error {
	mcs := test.MultipleChoices
	groups := test.TrueFalseGroups
	writings := test.WritingQuestions
	test.MultipleChoices, test.TrueFalseGroups, test.WritingQuestions = nil, nil, nil

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		for i := range mcs {
			mcs[i].TestID = test.ID
		}
		if len(mcs) > 0 {
			if err := tx.Create(&mcs).Error; err != nil {
				return err
			}
		}
		for i := range groups {
			groups[i].TestID = test.ID
			questions := groups[i].Questions
			groups[i].Questions = nil
			if err := tx.Create(&groups[i]).Error; err != nil {
				return err
			}
			groupID := groups[i].ID
			for j := range questions {
				questions[j].TestID = test.ID
				questions[j].GroupID = &groupID
			}
			if len(questions) > 0 {
				if err := tx.Create(&questions).Error; err != nil {
					return err
				}
			}
			groups[i].Questions = questions
		}
		for i := range writings {
			writings[i].TestID = test.ID
		}
		if len(writings) > 0 {
			if err := tx.Create(&writings).Error; err != nil {
				return err
			}
		}
		test.MultipleChoices, test.TrueFalseGroups, test.WritingQuestions = mcs, groups, writings
		return nil
	})
}

func (r *testRepository) FindByID(id uint) (*model.PlacementTest, error) {
	var test model.PlacementTest
	err := r.db.First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.PlacementTest, error) {
	var test model.PlacementTest
	err := r.db.
		Preload("MultipleChoices").
		Preload("TrueFalseGroups.Questions").
		Preload("WritingQuestions").
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount() ([]struct {
	model.PlacementTest
	QuestionCount int
}, error) {
	var results []struct {
		model.PlacementTest
		QuestionCount int
	}
	err := r.db.Model(&model.PlacementTest{}).
		Select(`placement_tests.*,
			(SELECT COUNT(*) FROM multiple_choice_questions WHERE multiple_choice_questions.test_id = placement_tests.id AND multiple_choice_questions.deleted_at IS NULL)
			+ (SELECT COUNT(*) FROM true_false_questions WHERE true_false_questions.test_id = placement_tests.id AND true_false_questions.deleted_at IS NULL)
			+ (SELECT COUNT(*) FROM writing_questions WHERE writing_questions.test_id = placement_tests.id AND writing_questions.deleted_at IS NULL) as question_count`).
		Where("placement_tests.deleted_at IS NULL").
		Order("placement_tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) UpdateMetadata(test *model.PlacementTest) error {
	return r.db.Model(&model.PlacementTest{}).Where("id = ?", test.ID).
		Updates(map[string]interface{}{
			"name":        test.Name,
			"description": test.Description,
			"time_limit":  test.TimeLimit,
		}).Error
}
