package server

import (
	"context"
	"fmt"
	"strings"

	"task-server/internal/domain"
	"task-server/internal/errors"
)

// mockTaskService implements the TaskService interface for testing
type mockTaskService struct {
	tasks      map[int64]*domain.Task
	nextTaskID int64
}

// newMockTaskService creates a new mock TaskService instance
func newMockTaskService() *mockTaskService {
	return &mockTaskService{
		tasks:      make(map[int64]*domain.Task),
		nextTaskID: 1,
	}
}

func (m *mockTaskService) CreateTask(ctx context.Context, create domain.TaskCreate) (*domain.Task, error) {
	if strings.TrimSpace(create.TaskName) == "" {
		return nil, errors.NewValidationError("invalid task", nil)
	}

	task := &domain.Task{
		ID:              m.nextTaskID,
		TaskName:        create.TaskName,
		TaskDescription: create.TaskDescription,
	}
	m.tasks[task.ID] = task
	m.nextTaskID++

	return task, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return task, nil
}

func (m *mockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for id := int64(1); id < m.nextTaskID; id++ {
		if task, exists := m.tasks[id]; exists {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// failingTaskService returns the same error from every operation
type failingTaskService struct {
	err error
}

func (f *failingTaskService) CreateTask(ctx context.Context, create domain.TaskCreate) (*domain.Task, error) {
	return nil, f.err
}

func (f *failingTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return nil, f.err
}

func (f *failingTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return nil, f.err
}
