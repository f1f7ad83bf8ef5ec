package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"task-server/internal/errors"
	"task-server/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// Open opens the SQLite database file at dbPath without touching the
// schema. Most callers want New instead; Open exists for tooling that
// drives migrations itself.
func Open(dbPath string) (*sql.DB, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, errors.NewInvalidInputError("database path", dbPath, "must not be empty")
	}

	cleanPath := filepath.Clean(dbPath)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	return db, nil
}

// New opens the SQLite database at dbPath, applies pending migrations,
// and returns a repository backed by it.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task inside a transaction and, once committed,
// reloads the stored row into task. The caller ends up with exactly what
// the database holds, including the assigned ID.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	query := `INSERT INTO tasks (task_name, task_description) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, tx, query, task.TaskName, task.TaskDescription)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit transaction", err)
	}

	stored, err := r.GetTask(ctx, id)
	if err != nil {
		return err
	}

	*task = *stored
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT id, task_name, task_description FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, task_name, task_description FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}
