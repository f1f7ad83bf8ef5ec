package domain

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID              int64   `json:"id"`
	TaskName        string  `json:"task_name"`
	TaskDescription *string `json:"task_description"`
}

// TaskCreate carries the client-supplied fields for a new task. It is the
// same shape as Task minus the ID, which storage assigns at insert time.
type TaskCreate struct {
	TaskName        string  `json:"task_name"`
	TaskDescription *string `json:"task_description"`
}

// Task builds a Task from the creation payload. The returned task has no
// ID yet; it receives one when persisted.
func (tc TaskCreate) Task() Task {
	return Task{
		TaskName:        tc.TaskName,
		TaskDescription: tc.TaskDescription,
	}
}

// NewTask creates a new Task with the given name.
func NewTask(name string) Task {
	return Task{
		TaskName: name,
	}
}

// HasDescription reports whether the task carries a description.
func (t Task) HasDescription() bool {
	return t.TaskDescription != nil
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.TaskName != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.TaskName
}
