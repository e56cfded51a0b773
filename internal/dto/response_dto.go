package dto

import "time"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Status  int         `json:"status"`
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
	Details []string    `json:"details,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// WritingFeedbackDTO carries the AI evaluation for one writing answer.
type WritingFeedbackDTO struct {
	QuestionID uint    `json:"question_id"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}

// GradingSummaryDTO is the result of grading one submission. WritingFeedback
// only holds evaluations that resolved before the response was assembled;
// the rest are persisted in the background and show up on the attempt later.
type GradingSummaryDTO struct {
	AttemptID       string               `json:"attemptId"`
	Status          string               `json:"status"`
	TotalScore      float64              `json:"totalScore"`
	PercentageScore string               `json:"percentageScore"`
	Level           string               `json:"level"`
	WritingFeedback []WritingFeedbackDTO `json:"writingFeedback"`
}

// --- Student-facing test DTOs (correct answers withheld) ---

type MultipleChoiceDTO struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type TrueFalseQuestionDTO struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

type TrueFalseGroupDTO struct {
	ID        uint                   `json:"id"`
	Passage   string                 `json:"passage,omitempty"`
	Questions []TrueFalseQuestionDTO `json:"questions"`
}

type WritingQuestionDTO struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

type TestDetailDTO struct {
	ID               uint                 `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description,omitempty"`
	TimeLimit        int                  `json:"time_limit"`
	MultipleChoices  []MultipleChoiceDTO  `json:"multiple_choices"`
	TrueFalseGroups  []TrueFalseGroupDTO  `json:"true_false_groups"`
	WritingQuestions []WritingQuestionDTO `json:"writing_questions"`
}

type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	TimeLimit     int       `json:"time_limit"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- Attempt DTOs ---

type AttemptDTO struct {
	AccessID       string     `json:"access_id"`
	TestID         uint       `json:"test_id"`
	StudentID      uint       `json:"student_id"`
	IsCompleted    bool       `json:"is_completed"`
	Status         string     `json:"status"`
	PendingWriting int        `json:"pending_writing"`
	StartedAt      time.Time  `json:"started_at"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
}

// AnswerReviewDTO is one graded answer in the attempt history view.
type AnswerReviewDTO struct {
	ID              uint      `json:"id"`
	QuestionType    string    `json:"question_type"`
	QuestionID      uint      `json:"question_id"`
	StudentAnswer   string    `json:"student_answer"`
	IsCorrect       *bool     `json:"is_correct,omitempty"`
	Score           float64   `json:"score"`
	WritingFeedback string    `json:"writing_feedback,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type ScoreDTO struct {
	AttemptID       uint      `json:"attempt_id"`
	TestID          uint      `json:"test_id"`
	TotalScore      float64   `json:"total_score"`
	PercentageScore float64   `json:"percentage_score"`
	Level           string    `json:"level"`
	CreatedAt       time.Time `json:"created_at"`
}
