package config

import "time"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 3: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Server overrides
	Host              *string
	Port              *int
	ReadHeaderTimeout *time.Duration
	ShutdownTimeout   *time.Duration

	// Database overrides
	DBDir      *string
	DBFilename *string

	// Validation overrides
	TaskNameMinLength        *int
	TaskNameMaxLength        *int
	TaskDescriptionMaxLength *int
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Server overrides
	if overrides.Host != nil {
		config.Server.Host = *overrides.Host
	}
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}
	if overrides.ReadHeaderTimeout != nil {
		config.Server.ReadHeaderTimeout = *overrides.ReadHeaderTimeout
	}
	if overrides.ShutdownTimeout != nil {
		config.Server.ShutdownTimeout = *overrides.ShutdownTimeout
	}

	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	// Validation overrides
	if overrides.TaskNameMinLength != nil {
		config.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}
	if overrides.TaskDescriptionMaxLength != nil {
		config.Validation.TaskDescriptionMaxLength = *overrides.TaskDescriptionMaxLength
	}
}
