package services

import (
	"context"
	"strings"

	"task-server/internal/domain"
	"task-server/internal/errors"
	"task-server/internal/repository/sqlite"
	"task-server/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance with default
// validation limits.
func NewTaskService(repo sqlite.Repository) TaskService {
	return NewTaskServiceWithValidator(repo, validation.NewTaskValidator())
}

// NewTaskServiceWithValidator creates a TaskService that validates with
// the given validator, typically one built from configuration.
func NewTaskServiceWithValidator(repo sqlite.Repository, taskValidator *validation.TaskValidator) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: taskValidator,
	}
}

// CreateTask validates the payload, persists it, and returns the task as
// the database stored it.
func (t *taskServiceImpl) CreateTask(ctx context.Context, create domain.TaskCreate) (*domain.Task, error) {
	create.TaskName = strings.TrimSpace(create.TaskName)

	if err := t.taskValidator.ValidateTaskForCreation(create); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dbTask := t.mapper.CreateToDatabase(create)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.FromDatabase(dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	// Validate task ID
	if id <= 0 {
		return nil, errors.NewValidationError("invalid task ID", nil)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	// Convert to domain model
	domainTask := t.mapper.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns every task in creation order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		domainTask := t.mapper.FromDatabase(*dbTask)
		tasks = append(tasks, &domainTask)
	}
	return tasks, nil
}
