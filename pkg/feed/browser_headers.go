package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9",
	"en-GB,en-US;q=0.9,en;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching,
// some publishers answer differently to requests that don't look like a browser
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
}
