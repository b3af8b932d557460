// Package scraper performs a preflight probe of listing-style directive URLs.
package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"archivarr/internal/options"
	"archivarr/internal/utils/logging"

	"github.com/gocolly/colly"
)

// listing URL path markers worth probing before a download run.
var listingMarkers = []string{"/@", "/channel/", "/playlist", "/c/", "/user/"}

// watch-style link markers collected from a probed page.
var watchMarkers = []string{"/watch", "/video/", "/shorts/"}

// IsListingURL reports whether the URL looks like a channel or playlist page
// rather than a single item.
func IsListingURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	for _, m := range listingMarkers {
		if strings.Contains(u.Path, m) {
			return true
		}
	}
	return strings.Contains(u.RawQuery, "list=")
}

// Probe fetches the target page and applies the match filter to the
// candidate links it finds.
type Probe struct {
	collector *colly.Collector
	filter    *options.MatchFilter
}

// NewProbe returns a probe applying the given match filter.
func NewProbe(f *options.MatchFilter) *Probe {
	return &Probe{
		collector: colly.NewCollector(),
		filter:    f,
	}
}

// Check scrapes candidate watch links from the page and reports how many
// pass the combined match filter.
func (p *Probe) Check(pageURL string) (accepted, rejected int, err error) {
	seen := make(map[string]struct{})

	p.collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Request.AbsoluteURL(e.Attr("href"))
		if href == "" || !isWatchLink(href) {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}

		title := strings.TrimSpace(e.Attr("title"))
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}

		if reason := p.filter.Allow(options.CandidateInfo{Title: title, PageURL: href}); reason != "" {
			logging.D(2, "Probe skipping %s: %s", href, reason)
			rejected++
			return
		}
		accepted++
	})

	if err := p.collector.Visit(pageURL); err != nil {
		return 0, 0, fmt.Errorf("probe visit failed: %w", err)
	}
	p.collector.Wait()

	return accepted, rejected, nil
}

func isWatchLink(href string) bool {
	for _, m := range watchMarkers {
		if strings.Contains(href, m) {
			return true
		}
	}
	return false
}
