package services

import (
	"errors"
	"fmt"

	apperrors "github.com/mica-edu/assessment-backend/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrConflict         = errors.New("resource conflict")

	// Category specific errors
	ErrCategoryNotFound = errors.New("test category not found")
	ErrCategoryExists   = errors.New("test category with this name or slug already exists")

	// Question specific errors
	ErrQuestionNotFound        = errors.New("question not found")
	ErrQuestionInvalidType     = errors.New("invalid question type")
	ErrQuestionUnknownCategory = errors.New("test category slug does not resolve")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ConflictError carries the duplicated identity that caused the conflict.
type ConflictError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

func (ce *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", ce.Resource, ce.Field, ce.Value)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewConflictError(resource, field, value string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Field:    field,
		Value:    value,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrQuestionNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrQuestionInvalidType) ||
		errors.Is(err, ErrQuestionUnknownCategory) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrCategoryExists) {
		return true
	}
	var ce *ConflictError
	return errors.As(err, &ce)
}
