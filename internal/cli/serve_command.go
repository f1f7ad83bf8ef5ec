package cli

import (
	"context"

	"task-server/internal/config"
	"task-server/internal/server"
	"task-server/internal/services"
	"task-server/internal/validation"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(cfg *config.Config) *ServeCommand {
	return &ServeCommand{
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}
}

// Execute opens the database and runs the HTTP server until ctx is cancelled
func (c *ServeCommand) Execute(ctx context.Context) error {
	repo, err := config.CreateRepository(c.config)
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer repo.Close()

	taskValidator := validation.NewTaskValidatorWithConfig(c.config)
	service := services.NewTaskServiceWithValidator(repo, taskValidator)

	if err := server.New(c.config, service).ListenAndServe(ctx); err != nil {
		return c.errorHandler.Handle("serve http", err)
	}
	return nil
}
