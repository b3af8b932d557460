// Package paths holds the main program file and directory paths.
package paths

import (
	"os"
	"path/filepath"
)

const (
	progDirName = ".archivarr"
	dbFileName  = "archivarr.db"
	logFileName = "archivarr.log"
)

var (
	// ProgDir is the program data directory (under the user home dir).
	ProgDir string

	// DBFilePath is the run-history database location.
	DBFilePath string

	// LogFilePath is the program log file location.
	LogFilePath string
)

// InitProgFilesDirs sets up the program directory and file path variables.
func InitProgFilesDirs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	ProgDir = filepath.Join(home, progDirName)
	if err := os.MkdirAll(ProgDir, 0o755); err != nil {
		return err
	}

	DBFilePath = filepath.Join(ProgDir, dbFileName)
	LogFilePath = filepath.Join(ProgDir, logFileName)
	return nil
}
