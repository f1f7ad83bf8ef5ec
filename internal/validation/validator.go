package validation

import (
	"strings"
	"task-server/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	minLen := v.getTaskNameMinLength()
	maxLen := v.getTaskNameMaxLength()
	return length >= minLen && length <= maxLen
}

// IsValidTaskDescriptionLength checks if a description fits within the
// configured limit. Descriptions are free text, so only length is bounded.
func (v *Validator) IsValidTaskDescriptionLength(description string) bool {
	return len(description) <= v.getTaskDescriptionMaxLength()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTaskNameMinLength returns configured minimum task name length or default
func (v *Validator) getTaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1 // Default minimum
}

// getTaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255 // Default maximum
}

// getTaskDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getTaskDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskDescriptionMaxLength
	}
	return 1000 // Default maximum
}
