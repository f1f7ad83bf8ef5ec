package validation

import (
	"task-server/internal/config"
	"task-server/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedName := tv.validator.TrimAndValidateString(name)

	// Check if name is empty
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	// Check length constraints
	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName,
			tv.validator.getTaskNameMinLength(), tv.validator.getTaskNameMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskDescription validates an optional task description. A nil
// description is valid; a present one only needs to fit the length limit.
func (tv *TaskValidator) ValidateTaskDescription(description *string) error {
	if description == nil {
		return nil
	}

	if !tv.validator.IsValidTaskDescriptionLength(*description) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("task_description", *description,
			0, tv.validator.getTaskDescriptionMaxLength())
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates a creation payload
func (tv *TaskValidator) ValidateTaskForCreation(create domain.TaskCreate) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(create.TaskName); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if descErr := tv.ValidateTaskDescription(create.TaskDescription); descErr != nil {
		if descValidationErr, ok := descErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	// Validate task name
	if nameErr := tv.ValidateTaskName(task.TaskName); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	// Validate description when present
	if descErr := tv.ValidateTaskDescription(task.TaskDescription); descErr != nil {
		if descValidationErr, ok := descErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
		}
	}

	// If task has an ID, validate it
	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
