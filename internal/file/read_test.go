package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"archivarr/internal/file"
)

func writeDirective(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archiveme.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write directive file: %v", err)
	}
	return path
}

// TestReadDirectiveFile checks parsing of a well-formed directive file.
func TestReadDirectiveFile(t *testing.T) {
	path := writeDirective(t, `
# archive directive
url:   https://www.youtube.com/watch?v=abc123

# sleep longer, keep only interviews
addtl_args: --sleep-interval 15 --match-title "long interview"
`)

	d, err := file.ReadDirectiveFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("expected trimmed URL, got %q", d.URL)
	}

	want := []string{"--sleep-interval", "15", "--match-title", "long interview"}
	if len(d.ExtraArgs) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), d.ExtraArgs)
	}
	for i, tok := range want {
		if d.ExtraArgs[i] != tok {
			t.Errorf("token %d: expected %q, got %q", i, tok, d.ExtraArgs[i])
		}
	}
}

// TestReadDirectiveFile_KeyHandling checks case-insensitive keys, URL
// overwrite, and accumulation of addtl_args tokens.
func TestReadDirectiveFile_KeyHandling(t *testing.T) {
	path := writeDirective(t, `
URL: https://example.com/first
Addtl_Args: --no-continue
url: https://example.com/second
ADDTL_ARGS: --no-overwrites
`)

	d, err := file.ReadDirectiveFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Later url: line wins
	if d.URL != "https://example.com/second" {
		t.Errorf("expected later url to overwrite, got %q", d.URL)
	}

	// Tokens from multiple lines accumulate in order
	if len(d.ExtraArgs) != 2 || d.ExtraArgs[0] != "--no-continue" || d.ExtraArgs[1] != "--no-overwrites" {
		t.Errorf("expected accumulated tokens, got %v", d.ExtraArgs)
	}
}

// TestReadDirectiveFile_MissingURL checks that a file without a url: line
// fails regardless of its other content.
func TestReadDirectiveFile_MissingURL(t *testing.T) {
	path := writeDirective(t, `
# no url here
addtl_args: --sleep-interval 15
`)

	_, err := file.ReadDirectiveFile(path)
	if err == nil {
		t.Fatalf("expected error for missing url, got nil")
	}
	if !errors.Is(err, file.ErrNoURL) {
		t.Errorf("expected ErrNoURL, got: %v", err)
	}
}

// TestReadDirectiveFile_MissingFile checks the missing-file error.
func TestReadDirectiveFile_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does_not_exist.txt")

	_, err := file.ReadDirectiveFile(missing)
	if err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

// TestReadDirectiveFile_MalformedArgs checks that unbalanced quoting is a
// parse error.
func TestReadDirectiveFile_MalformedArgs(t *testing.T) {
	path := writeDirective(t, `
url: https://example.com/watch?v=x
addtl_args: --match-title "unterminated
`)

	if _, err := file.ReadDirectiveFile(path); err == nil {
		t.Fatalf("expected error for unbalanced quotes, got nil")
	}
}
