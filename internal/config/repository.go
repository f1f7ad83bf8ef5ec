package config

import (
	"fmt"
	"os"
	"path/filepath"

	"task-server/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	// Make sure the database directory exists before opening the file
	if err := os.MkdirAll(config.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates a repository backed by a throwaway database
// file under dir, typically a testing TempDir
func CreateTestRepository(dir string) (sqlite.Repository, error) {
	repo, err := sqlite.New(filepath.Join(dir, "tasks.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
