package options

import (
	"strings"
	"testing"
)

// TestMatchFilter_ShortDuration checks items under 60s are rejected
// independent of title content.
func TestMatchFilter_ShortDuration(t *testing.T) {
	o := Defaults()
	o.MatchTitle = "interview"
	o.RebuildFilter()

	reason := o.Filter.Allow(CandidateInfo{Title: "Great Interview", Duration: 45})
	if reason == "" {
		t.Fatalf("expected rejection for 45s item")
	}
	if !strings.Contains(reason, "<60s") {
		t.Errorf("expected duration reason, got %q", reason)
	}

	// Unknown duration (0) does not trip the duration check
	if reason := o.Filter.Allow(CandidateInfo{Title: "Great Interview"}); reason != "" {
		t.Errorf("expected unknown duration to pass, got %q", reason)
	}
}

// TestMatchFilter_ShortsURL checks Shorts page URLs are rejected.
func TestMatchFilter_ShortsURL(t *testing.T) {
	o := Defaults()

	reason := o.Filter.Allow(CandidateInfo{
		Title:    "A normal length video",
		Duration: 600,
		PageURL:  "https://www.youtube.com/shorts/abc123",
	})
	if reason == "" {
		t.Fatalf("expected rejection for shorts URL")
	}
}

// TestMatchFilter_RejectTitle checks the reject pattern matches
// case-insensitively.
func TestMatchFilter_RejectTitle(t *testing.T) {
	o := Defaults()
	o.RejectTitle = "LIVE"
	o.RebuildFilter()

	if reason := o.Filter.Allow(CandidateInfo{Title: "Concert (live stream)", Duration: 300}); reason == "" {
		t.Errorf("expected rejection for reject-title match")
	}
	if reason := o.Filter.Allow(CandidateInfo{Title: "Studio session", Duration: 300}); reason != "" {
		t.Errorf("expected pass, got %q", reason)
	}
}

// TestMatchFilter_Allow checks a plain acceptable candidate returns no reason.
func TestMatchFilter_Allow(t *testing.T) {
	o := Defaults()

	if reason := o.Filter.Allow(CandidateInfo{
		Title:    "Full album",
		Duration: 3600,
		PageURL:  "https://www.youtube.com/watch?v=abc",
	}); reason != "" {
		t.Errorf("expected acceptance, got %q", reason)
	}
}

// TestMatchFilter_EngineExpr checks the rendered engine expression carries
// the duration and title bounds.
func TestMatchFilter_EngineExpr(t *testing.T) {
	o := Defaults()
	o.MatchTitle = "interview"
	o.RebuildFilter()

	expr := o.Filter.EngineExpr()
	if !strings.Contains(expr, "duration >= 60") {
		t.Errorf("expected duration bound in %q", expr)
	}
	if !strings.Contains(expr, "/shorts/") {
		t.Errorf("expected shorts bound in %q", expr)
	}
	if !strings.Contains(expr, "interview") {
		t.Errorf("expected title bound in %q", expr)
	}
}
