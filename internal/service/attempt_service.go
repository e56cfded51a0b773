package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/model"
	"github.com/lingostep/placement/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService opens attempts and serves their history: graded answers and
// the recorded score summary.
type AttemptService interface {
	StartAttempt(testID uint, req dto.StartAttemptDTO) (*dto.AttemptDTO, error)
	GetAttempt(accessID string) (*dto.AttemptDTO, error)
	GetAttemptAnswers(accessID string) ([]dto.AnswerReviewDTO, error)
	GetAttemptScore(accessID string) (*dto.ScoreDTO, error)
	GetStudentAttempts(studentID uint) ([]dto.AttemptDTO, error)
	GetStudentScores(studentID uint) ([]dto.ScoreDTO, error)
}

type attemptService struct {
	testRepo    repository.TestRepository
	studentRepo repository.StudentRepository
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	scoreRepo   repository.ScoreRepository
}

func NewAttemptService(
	testRepo repository.TestRepository,
	studentRepo repository.StudentRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	scoreRepo repository.ScoreRepository,
) AttemptService {
	return &attemptService{
		testRepo:    testRepo,
		studentRepo: studentRepo,
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		scoreRepo:   scoreRepo,
	}
}

func (s *attemptService) StartAttempt(testID uint, req dto.StartAttemptDTO) (*dto.AttemptDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to load test %d: %w", testID, err)
	}
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student %d: %w", req.StudentID, err)
	}

	attempt := model.TestAttempt{
		AccessID:  uuid.NewString(),
		TestID:    testID,
		StudentID: req.StudentID,
		Status:    model.AttemptStatusInProgress,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("studentID", req.StudentID).Msg("Failed to create attempt")
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	log.Info().Str("accessID", attempt.AccessID).Uint("testID", testID).Uint("studentID", req.StudentID).
		Msg("Placement test attempt started")

	return attemptToDTO(&attempt)
}

func (s *attemptService) GetAttempt(accessID string) (*dto.AttemptDTO, error) {
	attempt, err := s.findAttempt(accessID)
	if err != nil {
		return nil, err
	}
	return attemptToDTO(attempt)
}

func (s *attemptService) GetAttemptAnswers(accessID string) ([]dto.AnswerReviewDTO, error) {
	attempt, err := s.findAttempt(accessID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for attempt %d: %w", attempt.ID, err)
	}
	dtos := make([]dto.AnswerReviewDTO, 0, len(answers))
	for _, answer := range answers {
		var review dto.AnswerReviewDTO
		if err := copier.Copy(&review, &answer); err != nil {
			log.Error().Err(err).Uint("answerID", answer.ID).Msg("Failed to copy answer to review DTO")
			continue
		}
		dtos = append(dtos, review)
	}
	return dtos, nil
}

func (s *attemptService) GetAttemptScore(accessID string) (*dto.ScoreDTO, error) {
	attempt, err := s.findAttempt(accessID)
	if err != nil {
		return nil, err
	}
	score, err := s.scoreRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to load score for attempt %d: %w", attempt.ID, err)
	}
	var resp dto.ScoreDTO
	if err := copier.Copy(&resp, score); err != nil {
		return nil, fmt.Errorf("error preparing score response: %w", err)
	}
	return &resp, nil
}

func (s *attemptService) GetStudentAttempts(studentID uint) ([]dto.AttemptDTO, error) {
	attempts, err := s.attemptRepo.FindAllByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts for student %d: %w", studentID, err)
	}
	dtos := make([]dto.AttemptDTO, 0, len(attempts))
	for i := range attempts {
		resp, err := attemptToDTO(&attempts[i])
		if err != nil {
			log.Error().Err(err).Uint("attemptID", attempts[i].ID).Msg("Failed to copy attempt to DTO")
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *attemptService) GetStudentScores(studentID uint) ([]dto.ScoreDTO, error) {
	scores, err := s.scoreRepo.FindAllByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores for student %d: %w", studentID, err)
	}
	dtos := make([]dto.ScoreDTO, 0, len(scores))
	for _, score := range scores {
		var resp dto.ScoreDTO
		if err := copier.Copy(&resp, &score); err != nil {
			log.Error().Err(err).Uint("scoreID", score.ID).Msg("Failed to copy score to DTO")
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *attemptService) findAttempt(accessID string) (*model.TestAttempt, error) {
	attempt, err := s.attemptRepo.FindByAccessID(accessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to load attempt %s: %w", accessID, err)
	}
	return attempt, nil
}

func attemptToDTO(attempt *model.TestAttempt) (*dto.AttemptDTO, error) {
	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return &resp, nil
}
