package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"task-server/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "taskd",
		Short: "A minimal task HTTP service backed by SQLite",
		Long: `Task Server (taskd) is a small HTTP service for creating and reading tasks,
backed by a single-file SQLite database with versioned schema migrations.

ENDPOINTS:
  GET  /ping                               Health check, returns {"ping": "pong!"}
  POST /task/                              Create a task from a JSON payload
  GET  /task/                              List all tasks in creation order
  GET  /task/{taskID}                      Fetch a single task by its id

EXAMPLES:
  taskd serve                              # Run the server on 0.0.0.0:8000
  taskd serve --port 9000                  # Run the server on a different port
  taskd migrate up                         # Apply pending schema migrations
  taskd migrate status                     # Show the state of each migration
  taskd migrate down                       # Roll back the latest migration

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Server Configuration:
    TASKD_SERVER_HOST                      Listen host (default: 0.0.0.0)
    TASKD_SERVER_PORT                      Listen port (default: 8000)
    TASKD_SERVER_READ_HEADER_TIMEOUT       Read header timeout (default: 5s)
    TASKD_SERVER_SHUTDOWN_TIMEOUT          Graceful shutdown timeout (default: 5s)

  Database Configuration:
    TASKD_DB_DIR                           Database directory (default: .)
    TASKD_DB_FILENAME                      Database filename (default: database.db)

  Validation Configuration:
    TASKD_VALIDATION_TASK_NAME_MIN         Min task name length (default: 1)
    TASKD_VALIDATION_TASK_NAME_MAX         Max task name length (default: 255)
    TASKD_VALIDATION_TASK_DESCRIPTION_MAX  Max task description length (default: 1000)

  Logging Configuration:
    TASKD_DEBUG                            Enable per-request debug logging (default: off)

GETTING HELP:
  taskd [command] --help                   # Get help for any specific command
  taskd completion bash                    # Generate bash completion script
  taskd completion zsh                     # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with the provided context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Server configuration
	flags.String("host", "", "Listen host (overrides TASKD_SERVER_HOST)")
	flags.Int("port", 0, "Listen port (overrides TASKD_SERVER_PORT)")
	flags.Duration("shutdown-timeout", 0, "Graceful shutdown timeout (overrides TASKD_SERVER_SHUTDOWN_TIMEOUT)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TASKD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKD_DB_FILENAME)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TASKD_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TASKD_VALIDATION_TASK_NAME_MAX)")
	flags.Int("task-description-max-length", 0, "Maximum task description length (overrides TASKD_VALIDATION_TASK_DESCRIPTION_MAX)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the task HTTP server",
		Long: `Run the HTTP server, applying pending schema migrations on startup.

The server listens on the configured host and port and shuts down
gracefully on SIGINT or SIGTERM.

Examples:
  taskd serve                # Serve on 0.0.0.0:8000
  taskd serve --port 9000    # Serve on port 9000
  taskd --db-dir /var/lib/taskd serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serveHandler := NewServeCommand(r.config)
			return serveHandler.Execute(cmd.Context())
		},
	}

	// Migrate command with up/down/status subcommands
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
		Long: `Manage the versioned schema migrations of the task database.

The serve command applies pending migrations automatically on startup;
these subcommands exist for inspecting and driving the schema by hand.`,
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrateHandler := NewMigrateCommand(r.config)
			return migrateHandler.Up(cmd.Context())
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrateHandler := NewMigrateCommand(r.config)
			return migrateHandler.Down(cmd.Context())
		},
	}

	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the applied state of each migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrateHandler := NewMigrateCommand(r.config)
			return migrateHandler.Status(cmd.Context())
		},
	}

	migrateCmd.AddCommand(
		migrateUpCmd,
		migrateDownCmd,
		migrateStatusCmd,
	)

	// Add all subcommands to root
	r.cmd.AddCommand(
		serveCmd,
		migrateCmd,
	)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Server configuration
	if host, _ := flags.GetString("host"); host != "" {
		r.config.Server.Host = host
	}
	if port, _ := flags.GetInt("port"); port > 0 {
		r.config.Server.Port = port
	}
	if shutdownTimeout, _ := flags.GetDuration("shutdown-timeout"); shutdownTimeout > 0 {
		r.config.Server.ShutdownTimeout = shutdownTimeout
	}

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}

	// Validation configuration
	if taskNameMinLength, _ := flags.GetInt("task-name-min-length"); taskNameMinLength > 0 {
		r.config.Validation.TaskNameMinLength = taskNameMinLength
	}
	if taskNameMaxLength, _ := flags.GetInt("task-name-max-length"); taskNameMaxLength > 0 {
		r.config.Validation.TaskNameMaxLength = taskNameMaxLength
	}
	if taskDescriptionMaxLength, _ := flags.GetInt("task-description-max-length"); taskDescriptionMaxLength > 0 {
		r.config.Validation.TaskDescriptionMaxLength = taskDescriptionMaxLength
	}

	return nil
}

// PreRun sets up configuration overrides from flags before running commands
func (r *RootCommand) PreRun() error {
	return r.getConfigFromFlags()
}
