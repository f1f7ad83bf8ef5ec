package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the task server
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Validation ValidationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host              string        `env:"TASKD_SERVER_HOST"`
	Port              int           `env:"TASKD_SERVER_PORT"`
	ReadHeaderTimeout time.Duration `env:"TASKD_SERVER_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `env:"TASKD_SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `env:"TASKD_DB_DIR"`
	Filename string `env:"TASKD_DB_FILENAME"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength        int `env:"TASKD_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength        int `env:"TASKD_VALIDATION_TASK_NAME_MAX"`
	TaskDescriptionMaxLength int `env:"TASKD_VALIDATION_TASK_DESCRIPTION_MAX"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8000,
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:      ".",
			Filename: "database.db",
		},
		Validation: ValidationConfig{
			TaskNameMinLength:        1,
			TaskNameMaxLength:        255,
			TaskDescriptionMaxLength: 1000,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// ListenAddr returns the host:port address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadFromEnvironment overrides configuration from TASKD_* environment
// variables. Fields without a matching variable keep their current values.
func (c *Config) LoadFromEnvironment() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return &ConfigError{Field: "server.read_header_timeout", Message: "read header timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}
	if c.Validation.TaskDescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.task_description_max_length", Message: "task description maximum length must be at least 1"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
