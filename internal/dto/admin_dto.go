package dto

// MultipleChoiceCreateDTO is used within TestCreateDTO for admin test authoring.
type MultipleChoiceCreateDTO struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

type TrueFalseQuestionCreateDTO struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer *bool  `json:"correct_answer" binding:"required"`
}

type TrueFalseGroupCreateDTO struct {
	Passage   string                       `json:"passage"`
	Questions []TrueFalseQuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type WritingQuestionCreateDTO struct {
	Question string `json:"question" binding:"required"`
}

// TestCreateDTO is for admin to create a new placement test with its questions.
type TestCreateDTO struct {
	Name             string                     `json:"name" binding:"required"`
	Description      string                     `json:"description,omitempty"`
	TimeLimit        int                        `json:"time_limit" binding:"omitempty,gt=0"`
	MultipleChoices  []MultipleChoiceCreateDTO  `json:"multiple_choices" binding:"omitempty,dive"`
	TrueFalseGroups  []TrueFalseGroupCreateDTO  `json:"true_false_groups" binding:"omitempty,dive"`
	WritingQuestions []WritingQuestionCreateDTO `json:"writing_questions" binding:"omitempty,dive"`
}

// TestUpdateDTO updates test metadata only; questions are immutable reference
// data once students have taken the test.
type TestUpdateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TimeLimit   int    `json:"time_limit" binding:"omitempty,gt=0"`
}
