// Package consts holds program-wide constants.
package consts

// Program
const (
	Program = "Archivarr"
)

// Default file conventions.
const (
	DirectiveFileName = "archiveme.txt"
	DownloadArchive   = "downloaded.txt"
	CookieFileName    = "youtube.com_cookies.txt"
	OutputTemplate    = "%(title)s [%(id)s].%(ext)s"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitEngineError = 2
	ExitUnexpected  = 99
	ExitInterrupt   = 130
)
