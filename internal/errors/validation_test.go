package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address", "not-an-email")

	assert.Equal(t, "email", err.Field)
	assert.Equal(t, "not-an-email", err.Value)
	assert.Equal(t, "validation error on field 'email': must be a valid email address", err.Error())
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("questionCount", "must be at least 1", 0))
	assert.Equal(t, "validation failed: questionCount must be at least 1", errs.Error())

	errs = append(errs, *NewValidationError("timeLimit", "must be at least 5", 0))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("difficulty", "must be easy, medium, or hard", "difficulty_level", "impossible")

	assert.Equal(t, "difficulty", err.Field)
	assert.Equal(t, "difficulty_level", err.Rule)
	assert.Equal(t, "impossible", err.Value)
}

func TestToValidationErrors(t *testing.T) {
	type offerRequest struct {
		Title  string `validate:"required"`
		Salary string `validate:"required"`
	}

	errs := ToValidationErrors(validator.New().Struct(offerRequest{}))

	assert.Len(t, errs, 2)
	assert.Equal(t, "Title", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "required", errs[0].Rule)
	assert.Equal(t, "Salary", errs[1].Field)
}
