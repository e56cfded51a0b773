package service

import (
	"context"
	"sync"
	"time"

	"github.com/lingostep/placement/config"
	"github.com/lingostep/placement/internal/metrics"
	"github.com/lingostep/placement/internal/model"
	"github.com/lingostep/placement/internal/repository"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// The grader clamps every writing score into this range no matter what the
// evaluator returns.
const writingScoreCap = 10.0

const evaluationFallbackFeedback = "Sorry, we were unable to evaluate this answer automatically. Your other answers were graded normally."

// WritingJob is one writing answer waiting for AI evaluation.
type WritingJob struct {
	AttemptID  uint
	StudentID  uint
	TestID     uint
	QuestionID uint
	Question   string
	Answer     string
}

type WritingResult struct {
	QuestionID uint
	Score      float64
	Feedback   string
}

// WritingGrader evaluates and persists writing answers out of band. Enqueue
// returns a channel that delivers the result once; the record is persisted
// whether or not anyone reads it. Enqueue blocks when the job buffer is full
// and every worker is busy, which backpressures submission handlers instead
// of dropping evaluations.
type WritingGrader interface {
	Enqueue(job WritingJob) <-chan WritingResult
}

type writingTask struct {
	job    WritingJob
	result chan WritingResult
}

type writingQueue struct {
	evaluator   WritingEvaluator
	answerRepo  repository.AnswerRepository
	attemptRepo repository.AttemptRepository
	jobs        chan writingTask
	workers     int
	wg          sync.WaitGroup
}

func NewWritingQueue(
	lc fx.Lifecycle,
	cfg *config.Config,
	evaluator WritingEvaluator,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.AttemptRepository,
) WritingGrader {
	queueSize := cfg.Grading.WritingQueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	q := &writingQueue{
		evaluator:   evaluator,
		answerRepo:  answerRepo,
		attemptRepo: attemptRepo,
		jobs:        make(chan writingTask, queueSize),
		workers:     cfg.Grading.WritingWorkers,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Int("workers", q.workers).Msg("Starting writing evaluation workers")
			for i := 0; i < q.workers; i++ {
				q.wg.Add(1)
				go q.worker()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(q.jobs)
			done := make(chan struct{})
			go func() {
				q.wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return q
}

func (q *writingQueue) Enqueue(job WritingJob) <-chan WritingResult {
	result := make(chan WritingResult, 1)
	q.jobs <- writingTask{job: job, result: result}
	return result
}

func (q *writingQueue) worker() {
	defer q.wg.Done()
	for task := range q.jobs {
		q.process(task)
	}
}

func (q *writingQueue) process(task writingTask) {
	job := task.job
	// No deadline on the evaluation call itself; a slow evaluation delays
	// only its own record.
	score, feedback, err := q.evaluator.Evaluate(context.Background(), job.Question, job.Answer)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", job.AttemptID).Uint("questionID", job.QuestionID).
			Msg("Writing evaluation failed, recording zero score")
		score = 0
		feedback = evaluationFallbackFeedback
		metrics.WritingEvaluations.WithLabelValues("error").Inc()
	} else {
		metrics.WritingEvaluations.WithLabelValues("ok").Inc()
	}
	if score < 0 {
		score = 0
	}
	if score > writingScoreCap {
		score = writingScoreCap
	}

	record := model.StudentAnswer{
		AttemptID:       job.AttemptID,
		StudentID:       job.StudentID,
		TestID:          job.TestID,
		QuestionType:    model.QuestionTypeWriting,
		QuestionID:      job.QuestionID,
		StudentAnswer:   job.Answer,
		Score:           score,
		WritingFeedback: feedback,
		SubmittedAt:     time.Now(),
	}
	if err := q.answerRepo.Upsert(&record); err != nil {
		log.Error().Err(err).Uint("attemptID", job.AttemptID).Uint("questionID", job.QuestionID).
			Msg("Failed to persist writing answer record")
	}
	if err := q.attemptRepo.FinishWriting(job.AttemptID); err != nil {
		log.Error().Err(err).Uint("attemptID", job.AttemptID).Msg("Failed to update pending writing counter")
	}

	task.result <- WritingResult{QuestionID: job.QuestionID, Score: score, Feedback: feedback}
}
