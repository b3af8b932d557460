// Package database sets up/opens the program database.
package database

import (
	"database/sql"
	"fmt"

	"archivarr/internal/domain/consts"
	"archivarr/internal/utils/logging"

	// Package sqlite3 provides interface to SQLite3 databases.
	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Database holds the run-history database instance.
type Database struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the run-history database at the given path.
func InitDB(path string) (d *Database, err error) {
	d = new(Database)
	d.DB, err = sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	// Enable Write-Ahead Logging for concurrent access
	if _, err := d.DB.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Allow SQLite to wait for locks (in milliseconds)
	if _, err := d.DB.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	// Slightly reduce fsync frequency for faster writes
	if _, err := d.DB.Exec(`PRAGMA synchronous = NORMAL;`); err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if err := d.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the underlying database handle.
func (d *Database) Close() {
	if err := d.DB.Close(); err != nil {
		logging.E("failed to close database: %v", err)
	}
}

// initTables initializes the SQL tables.
func (d *Database) initTables() error {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E("transaction rollback failed after original error %v: %v", err, rbErr)
			}
		}
	}()

	if err = initRunsTable(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// initRunsTable creates the run-history table.
func initRunsTable(tx *sql.Tx) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s INTEGER PRIMARY KEY AUTOINCREMENT,
			%s TEXT NOT NULL,
			%s TEXT,
			%s TIMESTAMP NOT NULL,
			%s TIMESTAMP,
			%s TEXT NOT NULL,
			%s INTEGER
		)`,
		consts.DBRuns,
		consts.QRunID,
		consts.QRunURL,
		consts.QRunExtraArgs,
		consts.QRunStartedAt,
		consts.QRunFinishedAt,
		consts.QRunOutcome,
		consts.QRunExitCode,
	)

	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s table: %w", consts.DBRuns, err)
	}
	return nil
}
