// Package file contains utilities related to file operations (e.g. reading files).
package file

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"archivarr/internal/utils/logging"

	"github.com/google/shlex"
)

// Directive is the parsed archive directive: one URL plus optional extra
// argument tokens.
type Directive struct {
	URL       string
	ExtraArgs []string
}

// ErrNoURL is returned when the directive file contains no 'url:' line.
var ErrNoURL = errors.New("no 'url:' line found")

const (
	urlKey  = "url:"
	argsKey = "addtl_args:"
)

// ReadDirectiveFile parses the archive directive file.
//
// Keys are case-insensitive. A later 'url:' line overwrites an earlier one,
// while 'addtl_args:' tokens accumulate in order.
func ReadDirectiveFile(path string) (*Directive, error) {
	lines, err := readFileLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing required file: %s", path)
		}
		return nil, err
	}

	d := &Directive{}
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, urlKey):
			d.URL = strings.TrimSpace(line[len(urlKey):])
		case strings.HasPrefix(lower, argsKey):
			rest := strings.TrimSpace(line[len(argsKey):])
			tokens, err := shlex.Split(rest)
			if err != nil {
				return nil, fmt.Errorf("malformed addtl_args in %s: %w", path, err)
			}
			d.ExtraArgs = append(d.ExtraArgs, tokens...)
		}
	}

	if d.URL == "" {
		return nil, fmt.Errorf("%s must contain a 'url:' line: %w", path, ErrNoURL)
	}
	return d, nil
}

// readFileLines loads lines from a file (one per line, ignoring '#' comment lines).
func readFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %v due to error: %v", path, err)
		}
	}()

	lines := []string{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // skip blank lines and comments
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
