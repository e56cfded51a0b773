package service

import (
	"errors"
	"fmt"

	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/model"
	"github.com/lingostep/placement/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*model.PlacementTest, error)
	UpdateTest(testID uint, req dto.TestUpdateDTO) error
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*model.PlacementTest, error) {
	questionCount := len(req.MultipleChoices) + len(req.WritingQuestions)
	for _, group := range req.TrueFalseGroups {
		questionCount += len(group.Questions)
	}
	if questionCount == 0 {
		return nil, ErrEmptyTest
	}

	test := model.PlacementTest{
		Name:        req.Name,
		Description: req.Description,
		TimeLimit:   req.TimeLimit,
	}
	for _, mc := range req.MultipleChoices {
		if !containsOption(mc.Options, mc.CorrectAnswer) {
			return nil, fmt.Errorf("correct answer %q is not one of the options for question %q", mc.CorrectAnswer, mc.Question)
		}
		test.MultipleChoices = append(test.MultipleChoices, model.MultipleChoiceQuestion{
			Question:      mc.Question,
			Options:       mc.Options,
			CorrectAnswer: mc.CorrectAnswer,
		})
	}
	for _, group := range req.TrueFalseGroups {
		tfGroup := model.TrueFalseGroup{Passage: group.Passage}
		for _, q := range group.Questions {
			tfGroup.Questions = append(tfGroup.Questions, model.TrueFalseQuestion{
				Question:      q.Question,
				CorrectAnswer: *q.CorrectAnswer,
			})
		}
		test.TrueFalseGroups = append(test.TrueFalseGroups, tfGroup)
	}
	for _, w := range req.WritingQuestions {
		test.WritingQuestions = append(test.WritingQuestions, model.WritingQuestion{Question: w.Question})
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create placement test")
		return nil, fmt.Errorf("failed to create placement test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Int("questions", questionCount).Msg("Placement test created")
	return &test, nil
}

func (s *adminTestService) UpdateTest(testID uint, req dto.TestUpdateDTO) error {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTestNotFound
		}
		return fmt.Errorf("failed to load test %d: %w", testID, err)
	}
	test.Name = req.Name
	test.Description = req.Description
	if req.TimeLimit > 0 {
		test.TimeLimit = req.TimeLimit
	}
	if err := s.testRepo.UpdateMetadata(test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to update placement test")
		return fmt.Errorf("failed to update placement test %d: %w", testID, err)
	}
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
