package services

import (
	"context"

	"task-server/internal/domain"
)

// TaskService handles task lifecycle operations
type TaskService interface {
	// CreateTask persists a new task and returns it as stored, with the
	// ID the database assigned.
	CreateTask(ctx context.Context, create domain.TaskCreate) (*domain.Task, error)

	// GetTask retrieves a single task by its ID.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns every task in creation order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)
}
