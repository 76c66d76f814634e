package validator

import (
	"fmt"

	"github.com/talentflow/ats-service/internal/models"
)

// QuestionValidator handles validation logic for question bank entries
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateQuestion validates a complete question object
func (v *QuestionValidator) ValidateQuestion(question *models.Question) error {
	if question.Question == "" {
		return fmt.Errorf("question text is required")
	}

	if question.Points < 0 || question.Points > 100 {
		return fmt.Errorf("question points must be between 0 and 100")
	}

	switch question.Type {
	case models.QuestionMCQ, "":
		return v.validateChoiceQuestion(question)
	case models.QuestionCoding, models.QuestionEssay:
		// Free-form types carry no options and are graded manually.
		return nil
	default:
		return fmt.Errorf("unsupported question type: %s", question.Type)
	}
}

// ValidateQuestionBatch validates a batch of questions
func (v *QuestionValidator) ValidateQuestionBatch(questions []*models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("question batch cannot be empty")
	}

	for i, question := range questions {
		if err := v.ValidateQuestion(question); err != nil {
			return fmt.Errorf("validation failed for question %d: %w", i+1, err)
		}
	}

	return nil
}

func (v *QuestionValidator) validateChoiceQuestion(question *models.Question) error {
	if len(question.Options) < 2 {
		return fmt.Errorf("choice questions must have at least 2 options")
	}

	if len(question.Options) > 10 {
		return fmt.Errorf("choice questions cannot have more than 10 options")
	}

	for i, option := range question.Options {
		if option == "" {
			return fmt.Errorf("option %d text cannot be empty", i+1)
		}
	}

	if question.CorrectAnswer.Kind != models.AnswerChoiceIndex {
		return fmt.Errorf("choice questions must declare a correct option index")
	}

	if question.CorrectAnswer.Choice < 0 || question.CorrectAnswer.Choice >= len(question.Options) {
		return fmt.Errorf("correct answer index %d does not match any option", question.CorrectAnswer.Choice)
	}

	return nil
}
