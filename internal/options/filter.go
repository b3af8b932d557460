package options

import (
	"fmt"
	"regexp"
	"strings"

	"archivarr/internal/utils/logging"
)

// minDurationSecs is the cutoff below which candidates are treated as Shorts.
const minDurationSecs = 60

// CandidateInfo describes one item the engine is considering for download.
type CandidateInfo struct {
	Title    string
	Duration int // seconds, 0 when unknown
	PageURL  string
}

// MatchFilter decides per candidate item whether to download it.
type MatchFilter struct {
	titleRegex  *regexp.Regexp
	rejectTitle string
}

// Allow returns "" to accept the candidate, or a human-readable rejection
// reason to skip it.
func (f *MatchFilter) Allow(info CandidateInfo) string {
	// Block obvious YouTube Shorts
	if info.Duration > 0 && info.Duration < minDurationSecs {
		return "short video (<60s)"
	}
	if strings.Contains(info.PageURL, "/shorts/") {
		return "YouTube Shorts URL"
	}

	if f.titleRegex != nil && !f.titleRegex.MatchString(info.Title) {
		return fmt.Sprintf("title doesn't match %s", f.titleRegex.String())
	}
	if f.rejectTitle != "" && strings.Contains(strings.ToLower(info.Title), strings.ToLower(f.rejectTitle)) {
		return fmt.Sprintf("title matches reject pattern %q", f.rejectTitle)
	}
	return ""
}

// EngineExpr renders the filter as the engine's own match-filters expression,
// so candidates the engine enumerates itself honor the same bounds.
func (f *MatchFilter) EngineExpr() string {
	parts := []string{
		fmt.Sprintf("duration >= %d", minDurationSecs),
		"original_url !*= /shorts/",
	}
	if f.titleRegex != nil {
		parts = append(parts, "title ~= "+f.titleRegex.String())
	}
	if f.rejectTitle != "" {
		parts = append(parts, "title !*= "+f.rejectTitle)
	}
	return strings.Join(parts, " & ")
}

// RebuildFilter recompiles the combined match filter from the current
// title patterns. An invalid match-title regex is warned about and dropped.
func (o *Options) RebuildFilter() {
	f := &MatchFilter{rejectTitle: o.RejectTitle}

	if o.MatchTitle != "" {
		re, err := regexp.Compile("(?i)" + o.MatchTitle)
		if err != nil {
			logging.W("Ignoring invalid match-title pattern %q: %v", o.MatchTitle, err)
			o.MatchTitle = ""
		} else {
			f.titleRegex = re
		}
	}

	o.Filter = f
}
