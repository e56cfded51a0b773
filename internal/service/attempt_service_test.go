package service

import (
	"testing"

	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStudentRepo struct {
	students map[uint]*model.Student
}

func (f *fakeStudentRepo) FindByID(id uint) (*model.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return student, nil
}

func newAttemptFixture() (AttemptService, *fakeAttemptRepo, *fakeScoreRepo) {
	testRepo := &fakeTestRepo{tests: map[uint]*model.PlacementTest{}}
	testRepo.tests[1] = &model.PlacementTest{Name: "General English"}
	testRepo.tests[1].ID = 1
	studentRepo := &fakeStudentRepo{students: map[uint]*model.Student{
		1: {ID: 1, Username: "ana", Email: "ana@example.com"},
	}}
	attemptRepo := &fakeAttemptRepo{attempts: map[string]*model.TestAttempt{}}
	answerRepo := &fakeAnswerRepo{records: map[string]model.StudentAnswer{}}
	scoreRepo := &fakeScoreRepo{levels: map[uint]string{}}

	svc := NewAttemptService(testRepo, studentRepo, attemptRepo, answerRepo, scoreRepo)
	return svc, attemptRepo, scoreRepo
}

func TestStartAttempt(t *testing.T) {
	svc, attemptRepo, _ := newAttemptFixture()

	attempt, err := svc.StartAttempt(1, dto.StartAttemptDTO{StudentID: 1})
	require.NoError(t, err)

	assert.NotEmpty(t, attempt.AccessID)
	assert.Equal(t, uint(1), attempt.TestID)
	assert.Equal(t, uint(1), attempt.StudentID)
	assert.Equal(t, model.AttemptStatusInProgress, attempt.Status)
	assert.False(t, attempt.IsCompleted)
	assert.Contains(t, attemptRepo.attempts, attempt.AccessID)
}

func TestStartAttemptUnknownTest(t *testing.T) {
	svc, _, _ := newAttemptFixture()

	_, err := svc.StartAttempt(99, dto.StartAttemptDTO{StudentID: 1})
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestStartAttemptUnknownStudent(t *testing.T) {
	svc, _, _ := newAttemptFixture()

	_, err := svc.StartAttempt(1, dto.StartAttemptDTO{StudentID: 42})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGetAttemptNotFound(t *testing.T) {
	svc, _, _ := newAttemptFixture()

	_, err := svc.GetAttempt("missing")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestGetAttemptScore(t *testing.T) {
	svc, attemptRepo, scoreRepo := newAttemptFixture()
	attemptRepo.attempts["att-1"] = &model.TestAttempt{AccessID: "att-1", ID: 1, TestID: 1, StudentID: 1}

	_, err := svc.GetAttemptScore("att-1")
	assert.ErrorIs(t, err, ErrScoreNotFound)

	require.NoError(t, scoreRepo.SaveResult(&model.PlacementScore{
		AttemptID: 1, StudentID: 1, TestID: 1,
		TotalScore: 34, PercentageScore: 68, Level: "Intermediate",
	}, "Intermediate"))

	score, err := svc.GetAttemptScore("att-1")
	require.NoError(t, err)
	assert.Equal(t, 34.0, score.TotalScore)
	assert.Equal(t, "Intermediate", score.Level)
}
