// Package repo provides stores for database operations.
package repo

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"archivarr/internal/domain/consts"

	"github.com/Masterminds/squirrel"
)

// Run is one recorded invocation of the archiver.
type Run struct {
	ID         int64
	URL        string
	ExtraArgs  string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string
	ExitCode   int
}

// RunStore performs run-history database operations.
type RunStore struct {
	DB *sql.DB
}

// GetRunStore returns a run store for the given database.
func GetRunStore(db *sql.DB) *RunStore {
	return &RunStore{
		DB: db,
	}
}

// StartRun records the beginning of a run, returning its row ID.
func (rs *RunStore) StartRun(url string, extraArgs []string) (int64, error) {
	if url == "" {
		return 0, fmt.Errorf("must enter a url for the run")
	}

	query := squirrel.
		Insert(consts.DBRuns).
		Columns(
			consts.QRunURL,
			consts.QRunExtraArgs,
			consts.QRunStartedAt,
			consts.QRunOutcome,
		).
		Values(
			url,
			strings.Join(extraArgs, " "),
			time.Now(),
			consts.RunOutcomeRunning,
		).
		RunWith(rs.DB)

	res, err := query.Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// FinishRun records the outcome of a run.
func (rs *RunStore) FinishRun(id int64, outcome string, exitCode int) error {
	query := squirrel.
		Update(consts.DBRuns).
		Set(consts.QRunFinishedAt, time.Now()).
		Set(consts.QRunOutcome, outcome).
		Set(consts.QRunExitCode, exitCode).
		Where(squirrel.Eq{consts.QRunID: id}).
		RunWith(rs.DB)

	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to update run %d: %w", id, err)
	}
	return nil
}

// RecentRuns returns up to limit of the most recent runs, newest first.
func (rs *RunStore) RecentRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 25
	}

	rows, err := squirrel.
		Select(
			consts.QRunID,
			consts.QRunURL,
			consts.QRunExtraArgs,
			consts.QRunStartedAt,
			consts.QRunFinishedAt,
			consts.QRunOutcome,
			consts.QRunExitCode,
		).
		From(consts.DBRuns).
		OrderBy(consts.QRunID + " DESC").
		Limit(uint64(limit)).
		RunWith(rs.DB).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			r          Run
			extraArgs  sql.NullString
			finishedAt sql.NullTime
			exitCode   sql.NullInt64
		)

		if err := rows.Scan(&r.ID, &r.URL, &extraArgs, &r.StartedAt, &finishedAt, &r.Outcome, &exitCode); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}

		r.ExtraArgs = extraArgs.String
		if finishedAt.Valid {
			r.FinishedAt = finishedAt.Time
		}
		r.ExitCode = int(exitCode.Int64)

		runs = append(runs, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
