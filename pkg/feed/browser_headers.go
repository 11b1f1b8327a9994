package feed

import (
	"net/http"
)

// addFetchHeaders sets request headers for feed document fetching.
// The document is regenerated by the producer at any time, so every
// request bypasses intermediate caches.
func addFetchHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)

	// accept header for feed documents - json first, xml feeds as a fallback
	req.Header.Set("Accept", "application/json,application/feed+json;q=0.9,application/rss+xml;q=0.8,application/atom+xml;q=0.8,application/xml;q=0.7,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,it;q=0.8")

	// no-cache directives, both for HTTP/1.1 and HTTP/1.0 caches
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}
