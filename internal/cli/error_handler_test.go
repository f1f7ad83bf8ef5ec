package cli

import (
	"errors"
	"testing"

	apperrors "task-server/internal/errors"
	"task-server/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "create task",
			err:       apperrors.NewValidationError("invalid task", nil),
			expected:  "failed to create task: invalid task",
		},
		{
			name:      "Not found error",
			operation: "get task",
			err:       apperrors.NewNotFoundError("task", "42"),
			expected:  "failed to get task: task not found: 42",
		},
		{
			name:      "Database error",
			operation: "open database",
			err:       apperrors.NewDatabaseError("ping database", errors.New("timeout")),
			expected:  "failed to open database: A database error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "serve http",
			err:       errors.New("listen tcp: address in use"),
			expected:  "failed to serve http: listen tcp: address in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid task", nil),
			expected: "invalid task",
		},
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("task", "42"),
			expected: "task not found: 42",
		},
		{
			name:     "Database error",
			err:      apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsNotFoundError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("task", "42"),
			expected: true,
		},
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid task", nil),
			expected: false,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.IsNotFoundError(tt.err)
			if result != tt.expected {
				t.Errorf("ErrorHandler.IsNotFoundError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsDatabaseError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Database error",
			err:      apperrors.NewDatabaseError("insert", nil),
			expected: true,
		},
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid task", nil),
			expected: false,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.IsDatabaseError(tt.err)
			if result != tt.expected {
				t.Errorf("ErrorHandler.IsDatabaseError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleFieldErrors(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := &validation.ValidationError{
		Errors: []validation.FieldError{
			{Field: "task_name", Message: "Task name is required"},
		},
	}

	result := eh.Handle("create task", validationErr)
	expected := "failed to create task: Task name is required"

	if result.Error() != expected {
		t.Errorf("ErrorHandler.Handle() with validation error = %v, want %v", result.Error(), expected)
	}
}

func TestErrorHandler_HandleNilError(t *testing.T) {
	eh := NewErrorHandler()

	// Handle with a nil error still reports the failed operation
	result := eh.Handle("create task", nil)
	if result == nil {
		t.Errorf("ErrorHandler.Handle() with nil error should not return nil")
	}
}
