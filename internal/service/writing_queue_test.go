package service

import (
	"testing"

	"github.com/lingostep/placement/config"
	"github.com/lingostep/placement/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newQueueFixture(t *testing.T, evaluator WritingEvaluator) (WritingGrader, *fakeAnswerRepo, *fakeAttemptRepo) {
	t.Helper()
	answerRepo := &fakeAnswerRepo{records: map[string]model.StudentAnswer{}}
	attemptRepo := &fakeAttemptRepo{attempts: map[string]*model.TestAttempt{}}

	cfg := &config.Config{}
	cfg.Grading.WritingWorkers = 1

	lc := fxtest.NewLifecycle(t)
	grader := NewWritingQueue(lc, cfg, evaluator, answerRepo, attemptRepo)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)
	return grader, answerRepo, attemptRepo
}

func TestWritingQueuePersistsResult(t *testing.T) {
	grader, answerRepo, attemptRepo := newQueueFixture(t, &fakeEvaluator{score: 6, feedback: "Clear and relevant."})
	attemptRepo.attempts["a"] = &model.TestAttempt{AccessID: "a", ID: 1, IsCompleted: true, PendingWriting: 1, Status: model.AttemptStatusGradingPending}

	result := <-grader.Enqueue(WritingJob{AttemptID: 1, StudentID: 2, TestID: 3, QuestionID: 7, Question: "Essay", Answer: "My answer"})

	assert.Equal(t, 6.0, result.Score)
	assert.Equal(t, "Clear and relevant.", result.Feedback)

	records, _ := answerRepo.FindByAttemptID(1)
	require.Len(t, records, 1)
	assert.Equal(t, model.QuestionTypeWriting, records[0].QuestionType)
	assert.Equal(t, 6.0, records[0].Score)
	assert.Equal(t, uint(2), records[0].StudentID)

	// Last pending writing finished, so the attempt flips to completed.
	assert.Equal(t, 0, attemptRepo.attempts["a"].PendingWriting)
	assert.Equal(t, model.AttemptStatusCompleted, attemptRepo.attempts["a"].Status)
}

func TestWritingQueueClampsScores(t *testing.T) {
	grader, _, _ := newQueueFixture(t, &fakeEvaluator{score: 42, feedback: "Too generous."})

	result := <-grader.Enqueue(WritingJob{AttemptID: 1, QuestionID: 7, Question: "Essay", Answer: "x"})
	assert.Equal(t, writingScoreCap, result.Score)

	grader2, _, _ := newQueueFixture(t, &fakeEvaluator{score: -3, feedback: "Too harsh."})
	result2 := <-grader2.Enqueue(WritingJob{AttemptID: 1, QuestionID: 7, Question: "Essay", Answer: "x"})
	assert.Equal(t, 0.0, result2.Score)
}

func TestWritingQueueEvaluationFailure(t *testing.T) {
	grader, answerRepo, _ := newQueueFixture(t, &fakeEvaluator{failOn: "bad"})

	result := <-grader.Enqueue(WritingJob{AttemptID: 1, QuestionID: 7, Question: "Essay", Answer: "bad"})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, evaluationFallbackFeedback, result.Feedback)

	records, _ := answerRepo.FindByAttemptID(1)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Score)
	assert.Equal(t, evaluationFallbackFeedback, records[0].WritingFeedback)
}
