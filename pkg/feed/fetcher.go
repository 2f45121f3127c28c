package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// errors reported by the fetch and parse stages, callers convert all of them into fallback content
var (
	ErrTransport   = errors.New("transport failure")
	ErrEmptyBody   = errors.New("empty body")
	ErrParse       = errors.New("parse failure")
	ErrEmptyResult = errors.New("no qualifying items")
	ErrNoFeed      = errors.New("all feed urls failed")
)

// maxBodySize limits the size of a single feed document
const maxBodySize = 10 * 1024 * 1024

// Document is a successfully fetched feed body
type Document struct {
	URL  string
	Body []byte
}

// Fetcher downloads feed documents, trying urls in order until one returns a non-empty body
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the given per-request timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch tries every url strictly in order and returns the first transport-successful, non-empty body.
// There is no retry, a failed url is never attempted again within one call.
func (f *Fetcher) Fetch(ctx context.Context, urls []string, userAgent string) (Document, error) {
	var errs []error
	for _, u := range urls {
		body, err := f.get(ctx, u, userAgent)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", u, err))
			continue
		}
		return Document{URL: u, Body: body}, nil
	}
	return Document{}, errors.Join(append([]error{ErrNoFeed}, errs...)...)
}

// get performs a single GET request and reads the whole body
func (f *Fetcher) get(ctx context.Context, u, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}
