package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"task-server/internal/config"
	"task-server/internal/repository/sqlite"
	"task-server/internal/repository/sqlite/migrations"
)

// MigrateCommand handles the migrate subcommands
type MigrateCommand struct {
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewMigrateCommand creates a new migrate command handler
func NewMigrateCommand(cfg *config.Config) *MigrateCommand {
	return &MigrateCommand{
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}
}

// openDatabase opens the configured database file without migrating it,
// creating the parent directory when needed.
func (c *MigrateCommand) openDatabase() (*sql.DB, error) {
	if err := os.MkdirAll(c.config.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	return sqlite.Open(c.config.GetDatabasePath())
}

// Up applies all pending migrations
func (c *MigrateCommand) Up(ctx context.Context) error {
	db, err := c.openDatabase()
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer db.Close()

	before, err := appliedCount(db)
	if err != nil {
		return c.errorHandler.Handle("read migration status", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return c.errorHandler.Handle("apply migrations", err)
	}

	after, err := appliedCount(db)
	if err != nil {
		return c.errorHandler.Handle("read migration status", err)
	}

	if after == before {
		fmt.Println("No pending migrations")
		return nil
	}
	fmt.Printf("Applied %d migration(s)\n", after-before)
	return nil
}

// Down rolls back the most recently applied migration
func (c *MigrateCommand) Down(ctx context.Context) error {
	db, err := c.openDatabase()
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer db.Close()

	if err := migrations.Rollback(db); err != nil {
		return c.errorHandler.Handle("roll back migration", err)
	}

	fmt.Println("Rolled back one migration")
	return nil
}

// Status prints one line per known migration with its applied state
func (c *MigrateCommand) Status(ctx context.Context) error {
	db, err := c.openDatabase()
	if err != nil {
		return c.errorHandler.Handle("open database", err)
	}
	defer db.Close()

	statuses, err := migrations.MigrationStatus(db)
	if err != nil {
		return c.errorHandler.Handle("read migration status", err)
	}

	for _, s := range statuses {
		state := "pending"
		switch {
		case s.Dirty:
			state = "dirty"
		case s.Applied:
			state = fmt.Sprintf("applied at %s", s.AppliedAt)
		}
		fmt.Printf("%06d  %-30s %s\n", s.Version, s.Name, state)
	}
	return nil
}

func appliedCount(db *sql.DB) (int, error) {
	statuses, err := migrations.MigrationStatus(db)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, s := range statuses {
		if s.Applied {
			count++
		}
	}
	return count, nil
}
