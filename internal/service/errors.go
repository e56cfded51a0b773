package service

import "errors"

// Sentinel errors controllers map onto HTTP statuses. Storage errors are
// returned as-is (wrapped) and surface as generic failures.
var (
	ErrTestNotFound        = errors.New("placement test not found")
	ErrEmptyTest           = errors.New("placement test has no questions")
	ErrAttemptNotFound     = errors.New("test attempt not found")
	ErrAttemptTestMismatch = errors.New("attempt does not belong to this test")
	ErrStudentNotFound     = errors.New("student not found")
	ErrScoreNotFound       = errors.New("no score recorded for this attempt")
	ErrNoValidAnswers      = errors.New("no valid answers for the questions in this test")
)
