package services

import (
	"errors"

	apperrors "github.com/elmcrest/compass-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Session specific errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExists    = errors.New("session already exists")
	ErrSessionSubmitted = errors.New("session already submitted")

	// Answer and scoring errors
	ErrUnknownQuestion   = errors.New("unknown question identifier")
	ErrRatingOutOfRange  = errors.New("rating outside the 1..5 scale")
	ErrIncompleteAnswers = errors.New("not every question has been answered")
	ErrIdentityMissing   = errors.New("respondent name, email, or role missing")
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownCategory   = errors.New("unknown question category")

	// Storage endpoint errors
	ErrStorageNotConfigured = errors.New("storage endpoint not configured")
	ErrStorageUnavailable   = errors.New("storage endpoint unavailable")
	ErrListingRejected      = errors.New("storage endpoint rejected the listing request")
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
		errors.Is(err, ErrSessionNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrUnknownQuestion) ||
		errors.Is(err, ErrRatingOutOfRange) ||
		errors.Is(err, ErrUnknownRole) ||
		errors.Is(err, ErrUnknownCategory) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrSessionExists) ||
		errors.Is(err, ErrSessionSubmitted)
}

// IsIncomplete checks if error represents missing answers or identity,
// the completion-gate failures surfaced as 409s
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncompleteAnswers) ||
		errors.Is(err, ErrIdentityMissing)
}

// IsStorageUnavailable checks if error represents an unreachable or
// failing storage endpoint
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable) ||
		errors.Is(err, ErrStorageNotConfigured)
}

// IsListingRejected checks for an application-level rejection reported
// by the storage endpoint envelope
func IsListingRejected(err error) bool {
	return errors.Is(err, ErrListingRejected)
}
