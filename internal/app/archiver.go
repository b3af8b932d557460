// Package app wires the main archive run together.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"archivarr/internal/command/builder"
	"archivarr/internal/command/execute"
	"archivarr/internal/cookies"
	"archivarr/internal/domain/consts"
	"archivarr/internal/domain/errs"
	"archivarr/internal/domain/keys"
	"archivarr/internal/file"
	"archivarr/internal/options"
	"archivarr/internal/repo"
	"archivarr/internal/scraper"
	"archivarr/internal/utils/logging"
	"archivarr/internal/validation"

	"github.com/spf13/viper"
)

// Archiver runs one archive pass for the configured directive file.
type Archiver struct {
	runs *repo.RunStore
}

// NewArchiver returns an archiver recording into the given run store.
// A nil store disables run history but never blocks a download.
func NewArchiver(rs *repo.RunStore) *Archiver {
	return &Archiver{
		runs: rs,
	}
}

// Run performs the full pass: read the directive, build options, resolve
// cookies, probe listing pages, and invoke the engine.
func (a *Archiver) Run(ctx context.Context) error {
	directive, err := file.ReadDirectiveFile(viper.GetString(keys.DirectiveFile))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrConfig, err)
	}

	if err := validation.ValidateURL(directive.URL); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrConfig, err)
	}

	opts := options.Defaults()
	opts.Verbose = logging.Level >= 2
	if v := viper.GetString(keys.CookieFile); v != "" {
		opts.CookieFile = v
	}
	if v := viper.GetString(keys.ArchiveFile); v != "" {
		opts.DownloadArchive = v
	}
	opts.ApplyOverrides(directive.ExtraArgs)

	logging.I("Downloading from: %s", directive.URL)
	if len(directive.ExtraArgs) > 0 {
		logging.I("Extra args: %s", strings.Join(directive.ExtraArgs, " "))
	}

	a.resolveCookies(ctx, opts, directive.URL)

	if !viper.GetBool(keys.SkipProbe) && scraper.IsListingURL(directive.URL) {
		probe := scraper.NewProbe(opts.Filter)
		accepted, rejected, err := probe.Check(directive.URL)
		if err != nil {
			logging.W("Preflight probe failed: %v", err)
		} else {
			logging.I("Preflight probe: %d candidates pass filters, %d rejected", accepted, rejected)
		}
	}

	cmd, err := builder.NewDownloadCommandBuilder(opts, directive.URL).FetchCommand(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrConfig, err)
	}

	runID := a.recordStart(directive)

	if err := execute.RunDownload(ctx, cmd); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			a.recordFinish(runID, consts.RunOutcomeInterrupted, consts.ExitInterrupt)
		default:
			a.recordFinish(runID, consts.RunOutcomeFailed, consts.ExitEngineError)
		}
		return err
	}

	a.recordFinish(runID, consts.RunOutcomeSuccess, consts.ExitSuccess)
	logging.S("Download complete.")
	return nil
}

// resolveCookies decides which cookie file (if any) the engine receives.
// A missing cookie file is a warning, never an abort.
func (a *Archiver) resolveCookies(ctx context.Context, o *options.Options, url string) {
	if o.CookieFile != "" {
		if _, err := os.Stat(o.CookieFile); err == nil {
			return
		}
	}

	if o.CookieSource != "" {
		out := o.CookieFile
		if out == "" {
			out = consts.CookieFileName
		}

		found, err := cookies.FromBrowser(ctx, url, o.CookieSource, out)
		if err != nil {
			logging.W("Browser cookie extraction failed: %v", err)
		} else if found {
			o.CookieFile = out
			return
		}
	}

	if o.CookieFile != "" {
		logging.W("Cookie file %q not found, downloading without cookies", o.CookieFile)
	}
	o.CookieFile = ""
}

func (a *Archiver) recordStart(d *file.Directive) int64 {
	if a.runs == nil {
		return 0
	}

	id, err := a.runs.StartRun(d.URL, d.ExtraArgs)
	if err != nil {
		logging.W("Failed to record run start: %v", err)
		return 0
	}
	return id
}

func (a *Archiver) recordFinish(id int64, outcome string, exitCode int) {
	if a.runs == nil || id == 0 {
		return
	}

	if err := a.runs.FinishRun(id, outcome, exitCode); err != nil {
		logging.W("Failed to record run outcome: %v", err)
	}
}
