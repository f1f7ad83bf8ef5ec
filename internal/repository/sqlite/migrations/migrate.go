package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"task-server/internal/logging"
)

//go:embed *.sql
var migrationsFS embed.FS

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// Status describes one migration and whether it has been applied.
type Status struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt string
	Dirty     bool
}

// RunMigrations executes all pending migrations. A dirty migrations table
// blocks the run until it is resolved manually. For file-backed databases
// a backup of the file is taken before anything is applied; the backup is
// removed again once every migration commits.
func RunMigrations(db *sql.DB) error {
	// Create migrations table if it doesn't exist
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Refuse to touch a database with half-applied migrations
	dirty, err := dirtyVersions(db)
	if err != nil {
		return fmt.Errorf("failed to check migration state: %w", err)
	}
	if len(dirty) > 0 {
		return fmt.Errorf("database is in a dirty state, failed migration(s): %v, resolve manually before migrating", dirty)
	}

	// Get all migration files
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	// Get applied migrations
	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	var pending []Migration
	for _, migration := range migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	// Back up file-backed databases before changing the schema
	backupPath, err := backupDatabase(db)
	if err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}

	for _, migration := range pending {
		logging.Debugf("applying migration %d (%s)\n", migration.Version, migration.Name)
		if err := applyMigration(db, migration); err != nil {
			markDirty(db, migration.Version)
			if backupPath != "" {
				return fmt.Errorf("failed to apply migration %d (backup kept at %s): %w", migration.Version, backupPath, err)
			}
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}
	}

	if backupPath != "" {
		if err := os.Remove(backupPath); err != nil {
			logging.Debugf("could not remove backup %s: %v\n", backupPath, err)
		}
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func Rollback(db *sql.DB) error {
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	dirty, err := dirtyVersions(db)
	if err != nil {
		return fmt.Errorf("failed to check migration state: %w", err)
	}
	if len(dirty) > 0 {
		return fmt.Errorf("database is in a dirty state, failed migration(s): %v, resolve manually before migrating", dirty)
	}

	var version int
	err = db.QueryRow("SELECT version FROM migrations ORDER BY version DESC LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return fmt.Errorf("no migrations to roll back")
	}
	if err != nil {
		return fmt.Errorf("failed to find last applied migration: %w", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version == version {
			logging.Debugf("reverting migration %d (%s)\n", migration.Version, migration.Name)
			if err := revertMigration(db, migration); err != nil {
				return fmt.Errorf("failed to revert migration %d: %w", migration.Version, err)
			}
			return nil
		}
	}

	return fmt.Errorf("no migration file for applied version %d", version)
}

// MigrationStatus reports every known migration with its applied state.
func MigrationStatus(db *sql.DB) ([]Status, error) {
	if err := createMigrationsTable(db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	type record struct {
		appliedAt string
		dirty     bool
	}
	records := make(map[int]record)

	rows, err := db.Query("SELECT version, applied_at, dirty FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations table: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		var appliedAt string
		var dirty bool
		if err := rows.Scan(&version, &appliedAt, &dirty); err != nil {
			return nil, fmt.Errorf("failed to scan migrations table: %w", err)
		}
		records[version] = record{appliedAt: appliedAt, dirty: dirty}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read migrations table: %w", err)
	}

	statuses := make([]Status, 0, len(migrations))
	for _, migration := range migrations {
		status := Status{Version: migration.Version, Name: migration.Name}
		if rec, ok := records[migration.Version]; ok {
			status.Applied = true
			status.AppliedAt = rec.appliedAt
			status.Dirty = rec.dirty
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func createMigrationsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		dirty BOOLEAN DEFAULT FALSE
	)`
	_, err := db.Exec(query)
	return err
}

func loadMigrations() ([]Migration, error) {
	entries, err := migrationsFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		version := extractVersion(entry.Name())
		if version == 0 {
			continue
		}

		upSQL, err := migrationsFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		downFile := strings.Replace(entry.Name(), ".up.sql", ".down.sql", 1)
		downSQL, err := migrationsFS.ReadFile(downFile)
		if err != nil {
			return nil, err
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(entry.Name(), ".up.sql"),
			Up:      string(upSQL),
			Down:    string(downSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func dirtyVersions(db *sql.DB) ([]int, error) {
	rows, err := db.Query("SELECT version FROM migrations WHERE dirty ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, rows.Err()
}

func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(migration.Up); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", migration.Version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func revertMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(migration.Down); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM migrations WHERE version = ?", migration.Version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// markDirty records a failed migration so later runs refuse to proceed.
// The failed migration itself rolled back, so this write is best effort.
func markDirty(db *sql.DB, version int) {
	if _, err := db.Exec("INSERT INTO migrations (version, dirty) VALUES (?, TRUE)", version); err != nil {
		logging.Debugf("could not mark migration %d dirty: %v\n", version, err)
	}
}

// backupDatabase copies the database file aside before migrating. It
// returns the backup path, or an empty string for in-memory databases.
func backupDatabase(db *sql.DB) (string, error) {
	dbPath, err := databaseFilePath(db)
	if err != nil {
		return "", err
	}
	if dbPath == "" {
		return "", nil
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return "", nil
	}

	// Flush WAL pages into the main file so the copy is complete.
	// The pragma returns a result row, so it goes through Query.
	rows, err := db.Query("PRAGMA wal_checkpoint(TRUNCATE)")
	if err != nil {
		return "", err
	}
	rows.Close()

	backupPath := fmt.Sprintf("%s.backup.%d", dbPath, os.Getpid())
	if err := copyFile(dbPath, backupPath); err != nil {
		return "", err
	}

	logging.Debugf("created pre-migration backup %s\n", backupPath)
	return backupPath, nil
}

func databaseFilePath(db *sql.DB) (string, error) {
	var file string
	err := db.QueryRow("SELECT file FROM pragma_database_list WHERE name = 'main'").Scan(&file)
	if err != nil {
		return "", err
	}
	return file, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}
