// Package execute runs the built engine commands.
package execute

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"archivarr/internal/domain/errs"
	"archivarr/internal/utils/logging"
)

// RunDownload executes the engine command, streaming its output to the
// console and log.
//
// A failure from the engine is wrapped as errs.ErrDownload, except when the
// context was cancelled, in which case the context error is surfaced so the
// caller can report an interrupt.
func RunDownload(ctx context.Context, cmd *exec.Cmd) error {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	var lastErrLine string
	done := make(chan struct{})

	go func() {
		defer close(done)
		scanner := bufio.NewScanner(io.MultiReader(stdout, stderr))
		for scanner.Scan() {
			line := scanner.Text()
			logging.P("%s", line)

			// The engine prefixes its own failures with "ERROR:"
			if strings.HasPrefix(line, "ERROR:") {
				lastErrLine = line
			}
		}
		if err := scanner.Err(); err != nil {
			logging.E("Scanner error: %v", err)
		}
	}()

	logging.I("Executing download command: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start download: %w", err)
	}

	waitErr := cmd.Wait()
	<-done

	if waitErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if lastErrLine != "" {
			return fmt.Errorf("%w: %s (%v)", errs.ErrDownload, lastErrLine, waitErr)
		}
		return fmt.Errorf("%w: %v", errs.ErrDownload, waitErr)
	}

	return nil
}
