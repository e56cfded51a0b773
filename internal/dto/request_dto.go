package dto

// SubmittedAnswerDTO is one answer in a submission. The kind is decided by the
// client when the submission is built, so grading never has to probe all three
// question tables to find out what an id refers to.
type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Kind       string `json:"kind" binding:"required,oneof=multiple_choice true_false writing"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitAnswersDTO is the request body for grading one attempt.
type SubmitAnswersDTO struct {
	TestID    uint                 `json:"test_id" binding:"required"`
	AttemptID string               `json:"attempt_id" binding:"required"`
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

// StartAttemptDTO opens a new attempt for a student on a test.
type StartAttemptDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}
