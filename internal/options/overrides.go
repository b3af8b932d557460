package options

import (
	"strconv"

	"archivarr/internal/parsing"
	"archivarr/internal/utils/logging"
)

// Recognized directive override flags.
const (
	FlagMatchTitle         = "--match-title"
	FlagRejectTitle        = "--reject-title"
	FlagAudioFormat        = "--audio-format"
	FlagSleepInterval      = "--sleep-interval"
	FlagNoContinue         = "--no-continue"
	FlagNoOverwrites       = "--no-overwrites"
	FlagDateAfter          = "--date-after"
	FlagDateBefore         = "--date-before"
	FlagCookiesFromBrowser = "--cookies-from-browser"
)

// ApplyOverrides merges the whitelist of recognized directive flags into o.
//
// Unrecognized or malformed flags are skipped with a warning and leave every
// other option untouched; the run continues. The combined match filter is
// always rebuilt afterwards.
func (o *Options) ApplyOverrides(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		var next string
		if i+1 < len(args) {
			next = args[i+1]
		}

		switch arg {
		case FlagMatchTitle:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			o.MatchTitle = next
			i++

		case FlagRejectTitle:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			o.RejectTitle = next
			i++

		case FlagAudioFormat:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			if !o.setAudioCodec(next) {
				logging.W("Ignoring %s: no audio extraction stage in postprocessor chain", arg)
			}
			i++

		case FlagSleepInterval:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			v, err := strconv.Atoi(next)
			if err != nil {
				logging.W("Ignoring malformed argument %q: %v", arg, err)
			} else {
				o.MinSleepInterval = v
				o.MaxSleepInterval = v
			}
			i++

		case FlagNoContinue:
			o.ContinueDL = false

		case FlagNoOverwrites:
			o.NoOverwrites = false

		case FlagDateAfter, FlagDateBefore:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			d, err := parsing.NormalizeDate(next)
			if err != nil {
				logging.W("Ignoring malformed argument %q: %v", arg, err)
			} else if arg == FlagDateAfter {
				o.DateAfter = d
			} else {
				o.DateBefore = d
			}
			i++

		case FlagCookiesFromBrowser:
			if next == "" {
				logging.W("Ignoring %s: missing value", arg)
				continue
			}
			o.CookieSource = next
			i++

		default:
			logging.W("Ignoring unrecognized argument %q", arg)
		}
	}

	o.RebuildFilter()
}
