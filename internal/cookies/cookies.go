// Package cookies extracts browser cookies for the engine when no cookie
// file exists on disk.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"archivarr/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Register all browser cookie stores for kooky.
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// FromBrowser reads valid cookies for the URL's base domain from local
// browser profiles and writes them as a Netscape-format cookie file the
// engine can consume. Returns false when no cookies were found.
func FromBrowser(ctx context.Context, rawURL, browser, outPath string) (bool, error) {
	domain, err := baseDomain(rawURL)
	if err != nil {
		return false, fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	logging.I("Looking for %s cookies in local browser profiles (%s requested)...", domain, browser)

	kookyCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.Domain(domain))
	if err != nil {
		return false, fmt.Errorf("failed reading browser cookies: %w", err)
	}
	if len(kookyCookies) == 0 {
		logging.I("No cookies found for %s", domain)
		return false, nil
	}

	logging.I("Found %d cookies for %s", len(kookyCookies), domain)

	if err := saveCookiesToFile(convertToHTTPCookies(kookyCookies), domain, outPath); err != nil {
		return false, err
	}
	return true, nil
}

// baseDomain extracts the registrable base domain of a URL.
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Secure:  c.Secure,
			Expires: c.Expires,
		}
	}
	return httpCookies
}

// saveCookiesToFile saves the cookies to a file in Netscape format.
func saveCookiesToFile(cookies []*http.Cookie, fallbackDomain, cookieFilePath string) error {
	f, err := os.Create(cookieFilePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", cookieFilePath, err)
		}
	}()

	// Write the header for the Netscape cookies file
	if _, err := f.WriteString("# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"); err != nil {
		return err
	}

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), cookieFilePath)

	for _, cookie := range cookies {
		domain := cookie.Domain
		if domain == "" {
			domain = fallbackDomain
		}

		includeSubdomains := "FALSE"
		if strings.HasPrefix(domain, ".") {
			includeSubdomains = "TRUE"
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		expires := cookie.Expires
		if expires.IsZero() {
			expires = time.Now().Add(24 * time.Hour)
		}

		line := strings.Join([]string{
			domain,
			includeSubdomains,
			cookie.Path,
			secure,
			strconv.FormatInt(expires.Unix(), 10),
			cookie.Name,
			cookie.Value,
		}, "\t")

		if _, err := f.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return nil
}
