package consts

// Database tables.
const (
	DBRuns = "runs"
)

// Run table columns.
const (
	QRunID         = "id"
	QRunURL        = "url"
	QRunExtraArgs  = "extra_args"
	QRunStartedAt  = "started_at"
	QRunFinishedAt = "finished_at"
	QRunOutcome    = "outcome"
	QRunExitCode   = "exit_code"
)

// Run outcomes.
const (
	RunOutcomeRunning     = "running"
	RunOutcomeSuccess     = "success"
	RunOutcomeFailed      = "failed"
	RunOutcomeInterrupted = "interrupted"
)
