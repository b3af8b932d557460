package options

import (
	"testing"
)

// TestDefaults checks that the default option set matches the documented
// safe values exactly.
func TestDefaults(t *testing.T) {
	o := Defaults()

	if o.Format != "bestaudio/best" {
		t.Errorf("expected bestaudio/best format, got %q", o.Format)
	}
	if o.MinSleepInterval != 10 || o.MaxSleepInterval != 60 {
		t.Errorf("expected sleep interval 10-60, got %d-%d", o.MinSleepInterval, o.MaxSleepInterval)
	}
	if !o.NoOverwrites || !o.ContinueDL {
		t.Errorf("expected resume-and-no-clobber defaults, got nooverwrites=%v continuedl=%v", o.NoOverwrites, o.ContinueDL)
	}
	if o.DownloadArchive != "downloaded.txt" {
		t.Errorf("expected downloaded.txt archive path, got %q", o.DownloadArchive)
	}
	if o.CookieFile != "youtube.com_cookies.txt" {
		t.Errorf("expected youtube.com_cookies.txt cookie path, got %q", o.CookieFile)
	}
	if o.OutputTemplate != "%(title)s [%(id)s].%(ext)s" {
		t.Errorf("unexpected output template %q", o.OutputTemplate)
	}
	if !o.PreferFFmpeg {
		t.Errorf("expected prefer ffmpeg by default")
	}

	// Two-stage postprocessor chain: extract FLAC, then tag
	if len(o.Postprocessors) != 2 {
		t.Fatalf("expected 2 postprocessors, got %d", len(o.Postprocessors))
	}
	pp := o.Postprocessors[0]
	if pp.Key != PPExtractAudio || pp.PreferredCodec != "flac" || pp.PreferredQuality != "0" || pp.When != StagePostProcess {
		t.Errorf("unexpected extract-audio stage: %+v", pp)
	}
	pp = o.Postprocessors[1]
	if pp.Key != PPMetadata || !pp.AddMetadata || pp.When != StagePostProcess {
		t.Errorf("unexpected metadata stage: %+v", pp)
	}

	if o.Filter == nil {
		t.Errorf("expected match filter attached by default")
	}
}

// TestApplyOverrides_SleepInterval checks that one value sets both bounds.
func TestApplyOverrides_SleepInterval(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--sleep-interval", "15"})

	if o.MinSleepInterval != 15 || o.MaxSleepInterval != 15 {
		t.Errorf("expected both bounds 15, got %d-%d", o.MinSleepInterval, o.MaxSleepInterval)
	}
}

// TestApplyOverrides_UnrecognizedFlag checks that unknown flags are skipped
// without touching any other option.
func TestApplyOverrides_UnrecognizedFlag(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--unknown-flag", "--sleep-interval", "20"})

	// The unknown flag is skipped, the valid one still applies
	if o.MinSleepInterval != 20 || o.MaxSleepInterval != 20 {
		t.Errorf("expected later valid flag applied, got %d-%d", o.MinSleepInterval, o.MaxSleepInterval)
	}

	defaults := Defaults()
	if o.Format != defaults.Format || o.DownloadArchive != defaults.DownloadArchive {
		t.Errorf("unknown flag altered unrelated defaults")
	}
}

// TestApplyOverrides_MalformedValue checks that a non-integer sleep interval
// is warned about and ignored.
func TestApplyOverrides_MalformedValue(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--sleep-interval", "abc"})

	if o.MinSleepInterval != 10 || o.MaxSleepInterval != 60 {
		t.Errorf("malformed value altered sleep interval: %d-%d", o.MinSleepInterval, o.MaxSleepInterval)
	}
}

// TestApplyOverrides_MissingValue checks that a flag with no following value
// is skipped.
func TestApplyOverrides_MissingValue(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--audio-format"})

	if o.Postprocessors[0].PreferredCodec != "flac" {
		t.Errorf("expected codec unchanged, got %q", o.Postprocessors[0].PreferredCodec)
	}
}

// TestApplyOverrides_AudioFormat checks the codec override mutates the
// existing extract-audio stage.
func TestApplyOverrides_AudioFormat(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--audio-format", "opus"})

	if o.Postprocessors[0].PreferredCodec != "opus" {
		t.Errorf("expected opus codec, got %q", o.Postprocessors[0].PreferredCodec)
	}

	// Stage order and metadata stage untouched
	if o.Postprocessors[1].Key != PPMetadata {
		t.Errorf("metadata stage disturbed: %+v", o.Postprocessors[1])
	}
}

// TestApplyOverrides_Toggles checks the resume/overwrite toggles.
func TestApplyOverrides_Toggles(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--no-continue", "--no-overwrites"})

	if o.ContinueDL {
		t.Errorf("expected continuedl off")
	}
	if o.NoOverwrites {
		t.Errorf("expected nooverwrites off")
	}
}

// TestApplyOverrides_Dates checks flexible date inputs normalize to the
// engine's compact form.
func TestApplyOverrides_Dates(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--date-after", "2024-05-06", "--date-before", "Jan 2, 2025"})

	if o.DateAfter != "20240506" {
		t.Errorf("expected 20240506, got %q", o.DateAfter)
	}
	if o.DateBefore != "20250102" {
		t.Errorf("expected 20250102, got %q", o.DateBefore)
	}

	// Unparseable date ignored
	o.ApplyOverrides([]string{"--date-after", "not-a-date"})
	if o.DateAfter != "20240506" {
		t.Errorf("malformed date altered bound: %q", o.DateAfter)
	}
}

// TestApplyOverrides_CookiesFromBrowser checks the browser source override.
func TestApplyOverrides_CookiesFromBrowser(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--cookies-from-browser", "firefox"})

	if o.CookieSource != "firefox" {
		t.Errorf("expected firefox cookie source, got %q", o.CookieSource)
	}
}

// TestApplyOverrides_RebuildsFilter checks the match filter is rebuilt with
// the title pattern after overrides apply.
func TestApplyOverrides_RebuildsFilter(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--match-title", "interview"})

	if reason := o.Filter.Allow(CandidateInfo{Title: "Morning Interview", Duration: 300}); reason != "" {
		t.Errorf("expected case-insensitive title match to pass, got reason %q", reason)
	}
	if reason := o.Filter.Allow(CandidateInfo{Title: "music video", Duration: 300}); reason == "" {
		t.Errorf("expected non-matching title rejected")
	}
}

// TestApplyOverrides_InvalidRegex checks an invalid match-title pattern is
// dropped while the rest of the filter still applies.
func TestApplyOverrides_InvalidRegex(t *testing.T) {
	o := Defaults()
	o.ApplyOverrides([]string{"--match-title", "(unclosed"})

	if o.MatchTitle != "" {
		t.Errorf("expected invalid pattern dropped, got %q", o.MatchTitle)
	}
	if reason := o.Filter.Allow(CandidateInfo{Title: "anything", Duration: 30}); reason == "" {
		t.Errorf("expected duration filter still active")
	}
}
