package domain

import (
	"task-server/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:              domainTask.ID,
		TaskName:        domainTask.TaskName,
		TaskDescription: domainTask.TaskDescription,
	}
}

// CreateToDatabase converts a TaskCreate payload to a database Task with
// no ID set. The database assigns the ID on insert.
func (m *TaskMapper) CreateToDatabase(create TaskCreate) sqlite.Task {
	return sqlite.Task{
		TaskName:        create.TaskName,
		TaskDescription: create.TaskDescription,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:              dbTask.ID,
		TaskName:        dbTask.TaskName,
		TaskDescription: dbTask.TaskDescription,
	}
}

// ToDatabaseSlice converts a slice of domain Tasks to database Tasks.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []Task) []sqlite.Task {
	dbTasks := make([]sqlite.Task, len(domainTasks))
	for i, task := range domainTasks {
		dbTasks[i] = m.ToDatabase(task)
	}
	return dbTasks
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(task)
	}
	return domainTasks
}
