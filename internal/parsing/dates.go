// Package parsing parses and normalizes user-entered values.
package parsing

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
)

// NormalizeDate parses a flexible date input (e.g. "Jan 2nd, 2006" or
// "2006-01-02") into the engine's compact yyyymmdd form.
func NormalizeDate(d string) (string, error) {
	trimmed := strings.TrimSpace(d)
	if trimmed == "" {
		return "", fmt.Errorf("empty date value")
	}

	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return "", fmt.Errorf("unable to parse date: %s", trimmed)
	}
	return t.Format("20060102"), nil
}

// HyphenateYyyyMmDd hyphenates compact yyyymmdd date values for display.
func HyphenateYyyyMmDd(d string) string {
	d = strings.ReplaceAll(d, " ", "")
	d = strings.ReplaceAll(d, "-", "")
	if len(d) < 8 {
		return d
	}

	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}
