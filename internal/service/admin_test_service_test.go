package service

import (
	"testing"

	"github.com/lingostep/placement/internal/dto"
	"github.com/lingostep/placement/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateTest(t *testing.T) {
	repo := &fakeTestRepo{tests: map[uint]*model.PlacementTest{}}
	svc := NewAdminTestService(repo)

	test, err := svc.CreateTest(dto.TestCreateDTO{
		Name:      "General English Placement",
		TimeLimit: 45,
		MultipleChoices: []dto.MultipleChoiceCreateDTO{
			{Question: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectAnswer: "Paris"},
		},
		TrueFalseGroups: []dto.TrueFalseGroupCreateDTO{
			{Passage: "A short passage.", Questions: []dto.TrueFalseQuestionCreateDTO{
				{Question: "The passage is short.", CorrectAnswer: boolPtr(true)},
			}},
		},
		WritingQuestions: []dto.WritingQuestionCreateDTO{
			{Question: "Describe your daily routine."},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, test.ID)
	require.Len(t, test.MultipleChoices, 1)
	assert.Equal(t, "Paris", test.MultipleChoices[0].CorrectAnswer)
	require.Len(t, test.TrueFalseGroups, 1)
	assert.True(t, test.TrueFalseGroups[0].Questions[0].CorrectAnswer)
	assert.Len(t, test.WritingQuestions, 1)
}

func TestCreateTestWithoutQuestions(t *testing.T) {
	svc := NewAdminTestService(&fakeTestRepo{tests: map[uint]*model.PlacementTest{}})

	_, err := svc.CreateTest(dto.TestCreateDTO{Name: "Empty"})
	assert.ErrorIs(t, err, ErrEmptyTest)
}

func TestCreateTestCorrectAnswerMustBeAnOption(t *testing.T) {
	svc := NewAdminTestService(&fakeTestRepo{tests: map[uint]*model.PlacementTest{}})

	_, err := svc.CreateTest(dto.TestCreateDTO{
		Name: "Broken",
		MultipleChoices: []dto.MultipleChoiceCreateDTO{
			{Question: "Pick one", Options: []string{"a", "b"}, CorrectAnswer: "c"},
		},
	})
	assert.Error(t, err)
}

func TestUpdateTestNotFound(t *testing.T) {
	svc := NewAdminTestService(&fakeTestRepo{tests: map[uint]*model.PlacementTest{}})

	err := svc.UpdateTest(99, dto.TestUpdateDTO{Name: "Renamed"})
	assert.ErrorIs(t, err, ErrTestNotFound)
}
