package sqlite

// Task represents a row in the tasks table.
// TaskDescription uses a pointer to allow NULL values; rows created
// before the column existed stay readable as nil.
type Task struct {
	ID              int64
	TaskName        string
	TaskDescription *string
}
