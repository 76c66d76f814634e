package services

import (
	"errors"

	apperrors "github.com/talentflow/ats-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Job specific errors
	ErrJobNotFound = errors.New("job not found")

	// Candidate specific errors
	ErrCandidateNotFound       = errors.New("candidate not found")
	ErrCandidateDuplicateEmail = errors.New("candidate with this email already exists")

	// Application specific errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStage        = errors.New("invalid pipeline stage")

	// Interview specific errors
	ErrInterviewNotFound = errors.New("interview not found")
	ErrPanelNotFound     = errors.New("interview panel not found")

	// Question bank specific errors
	ErrQuestionNotFound    = errors.New("question not found")
	ErrQuestionInvalidType = errors.New("invalid question type")

	// Assessment specific errors
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAssessmentNoQuestion = errors.New("assessment has no questions available")

	// Submission specific errors
	ErrSubmissionNotFound         = errors.New("submission not found")
	ErrSubmissionAlreadySubmitted = errors.New("submission already submitted")
	ErrSubmissionNotInProgress    = errors.New("submission is not in progress")
	ErrDuplicateSubmission        = errors.New("submission with this idempotency key already processed")

	// Offer specific errors
	ErrOfferNotFound    = errors.New("offer letter not found")
	ErrOfferNotSendable = errors.New("offer letter cannot be sent in current status")
	ErrOfferExists      = errors.New("offer letter already exists for this application")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrCandidateNotFound) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrInterviewNotFound) ||
		errors.Is(err, ErrPanelNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrAssessmentNotFound) ||
		errors.Is(err, ErrSubmissionNotFound) ||
		errors.Is(err, ErrOfferNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrCandidateDuplicateEmail) ||
		errors.Is(err, ErrSubmissionAlreadySubmitted) ||
		errors.Is(err, ErrDuplicateSubmission) ||
		errors.Is(err, ErrOfferExists)
}
