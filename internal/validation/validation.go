// Package validation handles validation of user input.
package validation

import (
	"fmt"
	"net/url"
	"os"
)

// Debug level bounds.
const (
	minDebugLevel = 0
	maxDebugLevel = 5
)

// ValidateURL checks that the directive URL is absolute and well formed.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("url %q must be an absolute URL with a host", raw)
	}
	return nil
}

// ValidateFile validates that the path exists and is a regular file.
func ValidateFile(f string) (os.FileInfo, error) {
	info, err := os.Stat(f)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory, should be a file", f)
	}
	return info, nil
}

// ValidateDebugLevel clamps the debug level into its supported range.
func ValidateDebugLevel(l int) int {
	switch {
	case l < minDebugLevel:
		return minDebugLevel
	case l > maxDebugLevel:
		return maxDebugLevel
	default:
		return l
	}
}
