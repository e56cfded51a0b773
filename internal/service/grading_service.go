package service

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/lingostep/placement/config"
	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/model"
	"github.com/lingostep/placement/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService grades one submission of placement-test answers: objective
// answers synchronously, writing answers through the background queue.
type GradingService interface {
	SubmitAnswers(req dto.SubmitAnswersDTO) (*dto.GradingSummaryDTO, error)
}

type gradingService struct {
	testRepo      repository.TestRepository
	questionRepo  repository.QuestionRepository
	attemptRepo   repository.AttemptRepository
	answerRepo    repository.AnswerRepository
	scoreRepo     repository.ScoreRepository
	classifier    LevelClassifierService
	writingGrader WritingGrader
	writingWait   time.Duration
}

func NewGradingService(
	cfg *config.Config,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	scoreRepo repository.ScoreRepository,
	classifier LevelClassifierService,
	writingGrader WritingGrader,
) GradingService {
	return &gradingService{
		testRepo:      testRepo,
		questionRepo:  questionRepo,
		attemptRepo:   attemptRepo,
		answerRepo:    answerRepo,
		scoreRepo:     scoreRepo,
		classifier:    classifier,
		writingGrader: writingGrader,
		writingWait:   time.Duration(cfg.Grading.WritingWaitMs) * time.Millisecond,
	}
}

// pendingWriting is a writing answer handed to the queue; its result may or
// may not arrive before the response is assembled.
type pendingWriting struct {
	questionID uint
	result     <-chan WritingResult
}

// answerOutcome carries the result of dispatching one submitted answer.
type answerOutcome struct {
	record  *model.StudentAnswer
	writing *WritingJob
	skipped bool
	err     error
}

func (s *gradingService) SubmitAnswers(req dto.SubmitAnswersDTO) (*dto.GradingSummaryDTO, error) {
	// 1. Resolve attempt and validate test preconditions before any mutation.
	attempt, err := s.attemptRepo.FindByAccessID(req.AttemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to load attempt %s: %w", req.AttemptID, err)
	}
	if attempt.TestID != req.TestID {
		return nil, ErrAttemptTestMismatch
	}

	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to load test %d: %w", req.TestID, err)
	}
	counts, err := s.questionRepo.CountByTest(req.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for test %d: %w", req.TestID, err)
	}
	totalQuestions := counts.Total()
	if totalQuestions == 0 {
		return nil, ErrEmptyTest
	}

	// 2. Dispatch every answer concurrently, by its declared kind.
	submittedAt := time.Now()
	var wg sync.WaitGroup
	outcomes := make(chan answerOutcome, len(req.Answers))
	for _, answer := range req.Answers {
		wg.Add(1)
		go func(a dto.SubmittedAnswerDTO) {
			defer wg.Done()
			outcomes <- s.dispatchAnswer(attempt, a, submittedAt)
		}(answer)
	}
	wg.Wait()
	close(outcomes)

	var objective []model.StudentAnswer
	var writingJobs []WritingJob
	for outcome := range outcomes {
		switch {
		case outcome.err != nil:
			return nil, outcome.err
		case outcome.skipped:
			// Already logged at dispatch.
		case outcome.record != nil:
			objective = append(objective, *outcome.record)
		case outcome.writing != nil:
			writingJobs = append(writingJobs, *outcome.writing)
		}
	}
	if len(objective) == 0 && len(writingJobs) == 0 {
		return nil, ErrNoValidAnswers
	}

	// 3. One batch write for all objective records.
	if err := s.answerRepo.UpsertBatch(objective); err != nil {
		return nil, fmt.Errorf("failed to persist answer records: %w", err)
	}

	// 4. Mark the attempt completed; writing answers may still be pending.
	if err := s.attemptRepo.MarkCompleted(attempt.ID, len(writingJobs)); err != nil {
		return nil, fmt.Errorf("failed to mark attempt %d completed: %w", attempt.ID, err)
	}

	// Enqueue writing jobs only after the pending counter is recorded, so an
	// evaluation finishing immediately still finds a counter to decrement.
	pending := make([]pendingWriting, 0, len(writingJobs))
	for _, job := range writingJobs {
		pending = append(pending, pendingWriting{
			questionID: job.QuestionID,
			result:     s.writingGrader.Enqueue(job),
		})
	}

	// 5. Aggregate from persisted records so retried or partial submissions
	// count, not just the answers in this request.
	persisted, err := s.answerRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer records for attempt %d: %w", attempt.ID, err)
	}
	totalScore := 0.0
	for _, record := range persisted {
		totalScore += record.Score
	}
	percentage := totalScore / float64(totalQuestions) * 100
	if percentage > 100 {
		percentage = 100
	}

	level := s.classifier.Classify(totalScore)

	// 6. Level and summary land together or not at all. Earlier writes stay
	// either way; resubmission is the recovery path.
	score := model.PlacementScore{
		AttemptID:       attempt.ID,
		StudentID:       attempt.StudentID,
		TestID:          attempt.TestID,
		TotalScore:      totalScore,
		PercentageScore: percentage,
		Level:           level,
	}
	if err := s.scoreRepo.SaveResult(&score, level); err != nil {
		return nil, fmt.Errorf("failed to save placement result for attempt %d: %w", attempt.ID, err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Float64("totalScore", totalScore).
		Float64("percentage", percentage).
		Str("level", level).
		Int("pendingWriting", len(pending)).
		Msg("Placement submission graded")

	summary := &dto.GradingSummaryDTO{
		AttemptID:       req.AttemptID,
		Status:          model.AttemptStatusCompleted,
		TotalScore:      totalScore,
		PercentageScore: fmt.Sprintf("%.2f", percentage),
		Level:           level,
		WritingFeedback: s.collectWritingFeedback(pending),
	}
	if len(pending) > 0 && len(summary.WritingFeedback) < len(pending) {
		summary.Status = model.AttemptStatusGradingPending
	}
	return summary, nil
}

// dispatchAnswer grades one objective answer in place or builds the queue job
// for a writing answer. Answers for unknown questions or questions of another
// test are skipped, not failed.
func (s *gradingService) dispatchAnswer(attempt *model.TestAttempt, answer dto.SubmittedAnswerDTO, submittedAt time.Time) answerOutcome {
	record := model.StudentAnswer{
		AttemptID:     attempt.ID,
		StudentID:     attempt.StudentID,
		TestID:        attempt.TestID,
		QuestionType:  answer.Kind,
		QuestionID:    answer.QuestionID,
		StudentAnswer: answer.Answer,
		SubmittedAt:   submittedAt,
	}

	switch answer.Kind {
	case model.QuestionTypeMultipleChoice:
		question, err := s.questionRepo.FindMultipleChoice(answer.QuestionID)
		if outcome, ok := checkLookup(err, attempt.TestID, answer); !ok {
			return outcome
		} else if question.TestID != attempt.TestID {
			return skipForeign(attempt.TestID, answer)
		}
		correct := question.CorrectAnswer == answer.Answer
		record.IsCorrect = &correct
		if correct {
			record.Score = 1
		}
		return answerOutcome{record: &record}

	case model.QuestionTypeTrueFalse:
		question, err := s.questionRepo.FindTrueFalse(answer.QuestionID)
		if outcome, ok := checkLookup(err, attempt.TestID, answer); !ok {
			return outcome
		} else if question.TestID != attempt.TestID {
			return skipForeign(attempt.TestID, answer)
		}
		correct := strconv.FormatBool(question.CorrectAnswer) == answer.Answer
		record.IsCorrect = &correct
		if correct {
			record.Score = 1
		}
		return answerOutcome{record: &record}

	case model.QuestionTypeWriting:
		question, err := s.questionRepo.FindWriting(answer.QuestionID)
		if outcome, ok := checkLookup(err, attempt.TestID, answer); !ok {
			return outcome
		} else if question.TestID != attempt.TestID {
			return skipForeign(attempt.TestID, answer)
		}
		return answerOutcome{writing: &WritingJob{
			AttemptID:  attempt.ID,
			StudentID:  attempt.StudentID,
			TestID:     attempt.TestID,
			QuestionID: question.ID,
			Question:   question.Question,
			Answer:     answer.Answer,
		}}

	default:
		log.Warn().Str("kind", answer.Kind).Uint("questionID", answer.QuestionID).
			Msg("Skipping answer with unknown question kind")
		return answerOutcome{skipped: true}
	}
}

func checkLookup(err error, testID uint, answer dto.SubmittedAnswerDTO) (answerOutcome, bool) {
	if err == nil {
		return answerOutcome{}, true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Str("kind", answer.Kind).Uint("questionID", answer.QuestionID).Uint("testID", testID).
			Msg("Skipping answer for unknown question")
		return answerOutcome{skipped: true}, false
	}
	return answerOutcome{err: fmt.Errorf("failed to load %s question %d: %w", answer.Kind, answer.QuestionID, err)}, false
}

func skipForeign(testID uint, answer dto.SubmittedAnswerDTO) answerOutcome {
	log.Warn().Str("kind", answer.Kind).Uint("questionID", answer.QuestionID).Uint("testID", testID).
		Msg("Skipping answer for a question that is not part of this test")
	return answerOutcome{skipped: true}
}

// collectWritingFeedback gathers evaluations that resolve within the wait
// window. Slow evaluations still persist through the queue; they just miss
// this response.
func (s *gradingService) collectWritingFeedback(pending []pendingWriting) []dto.WritingFeedbackDTO {
	feedback := make([]dto.WritingFeedbackDTO, 0, len(pending))
	if len(pending) == 0 {
		return feedback
	}
	timer := time.NewTimer(s.writingWait)
	defer timer.Stop()
collect:
	for i, p := range pending {
		select {
		case result := <-p.result:
			feedback = append(feedback, dto.WritingFeedbackDTO{
				QuestionID: result.QuestionID,
				Score:      result.Score,
				Feedback:   result.Feedback,
			})
		case <-timer.C:
			// Window closed. Scoop up results that already arrived so one
			// slow evaluation does not drop faster ones queued behind it.
			for _, rest := range pending[i:] {
				select {
				case result := <-rest.result:
					feedback = append(feedback, dto.WritingFeedbackDTO{
						QuestionID: result.QuestionID,
						Score:      result.Score,
						Feedback:   result.Feedback,
					})
				default:
				}
			}
			break collect
		}
	}
	return feedback
}
