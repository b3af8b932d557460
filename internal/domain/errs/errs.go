// Package errs holds the error categories used for exit-code mapping.
package errs

import "errors"

var (
	// ErrConfig marks errors detected before any engine activity
	// (missing directive file, missing URL, malformed overrides).
	ErrConfig = errors.New("configuration error")

	// ErrDownload marks failures reported by the download engine.
	ErrDownload = errors.New("download error")
)
