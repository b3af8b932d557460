// Package builder translates an option set into the engine's argument form.
package builder

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"archivarr/internal/domain/command"
	"archivarr/internal/options"
	"archivarr/internal/utils/logging"
)

// DownloadCommandBuilder renders engine commands for a single URL.
type DownloadCommandBuilder struct {
	opts *options.Options
	url  string
}

// NewDownloadCommandBuilder returns a builder for the given options and URL.
func NewDownloadCommandBuilder(o *options.Options, url string) *DownloadCommandBuilder {
	return &DownloadCommandBuilder{
		opts: o,
		url:  url,
	}
}

// BuildArgs renders the engine argument list from the option set.
func (b *DownloadCommandBuilder) BuildArgs() ([]string, error) {
	if b.url == "" {
		return nil, fmt.Errorf("no URL to build a download command for")
	}
	o := b.opts

	args := []string{command.Format, o.Format}

	args = append(args,
		command.MinSleepInterval, strconv.Itoa(o.MinSleepInterval),
		command.MaxSleepInterval, strconv.Itoa(o.MaxSleepInterval),
	)

	if o.NoOverwrites {
		args = append(args, command.NoOverwrites)
	}
	if !o.ContinueDL {
		args = append(args, command.NoContinue)
	}

	args = append(args, command.DownloadArchive, o.DownloadArchive)
	args = append(args, command.Output, o.OutputTemplate)

	if o.CookieFile != "" {
		args = append(args, command.CookiePath, o.CookieFile)
	}

	if o.DateAfter != "" {
		args = append(args, command.DateAfter, o.DateAfter)
	}
	if o.DateBefore != "" {
		args = append(args, command.DateBefore, o.DateBefore)
	}

	if o.PreferFFmpeg {
		args = append(args, command.PreferFFmpeg)
	}
	if o.Verbose {
		args = append(args, command.Verbose)
	}

	for _, pp := range o.Postprocessors {
		switch pp.Key {
		case options.PPExtractAudio:
			args = append(args, command.ExtractAudio, command.AudioFormat, pp.PreferredCodec)
			if pp.PreferredQuality != "" {
				args = append(args, command.AudioQuality, pp.PreferredQuality)
			}
		case options.PPMetadata:
			if pp.AddMetadata {
				args = append(args, command.EmbedMetadata)
			}
		}
	}

	if expr := o.Filter.EngineExpr(); expr != "" {
		args = append(args, command.MatchFilters, expr)
	}

	args = append(args, b.url)

	logging.D(1, "Built argument list: %v", args)
	return args, nil
}

// FetchCommand builds the runnable engine command.
func (b *DownloadCommandBuilder) FetchCommand(ctx context.Context) (*exec.Cmd, error) {
	if _, err := exec.LookPath(command.YTDLP); err != nil {
		return nil, fmt.Errorf("%s command not found: %w", command.YTDLP, err)
	}

	args, err := b.BuildArgs()
	if err != nil {
		return nil, err
	}

	return exec.CommandContext(ctx, command.YTDLP, args...), nil
}
