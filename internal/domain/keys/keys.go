// Package keys holds the Viper keys used across the program.
package keys

// Terminal keys
const (
	DirectiveFile string = "file"
	DebugLevel    string = "debug-level"
	SkipProbe     string = "skip-probe"
	CookieFile    string = "cookie-file"
	ArchiveFile   string = "archive-file"
	HistoryLimit  string = "limit"
)

// Primary program
const (
	Execute string = "execute"
)
