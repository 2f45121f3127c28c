package feed

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/clubfeed/pkg/domain"
)

// State of a news refresh
type State string

// refresh states, Done and Fallback are terminal
const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateParsing  State = "parsing"
	StateDone     State = "done"
	StateFallback State = "fallback"
)

// DocumentFetcher gets the first usable document out of an ordered list of urls
type DocumentFetcher interface {
	Fetch(ctx context.Context, urls []string, userAgent string) (Document, error)
}

// Result of a single news refresh
type Result struct {
	Items []domain.FeedItem
	State State  // StateDone or StateFallback
	URL   string // feed url the items came from, empty for fallback
	Err   error  // cause of the fallback or of a partial parse, informational only
}

// Source runs the news pipeline: fetch -> parse -> normalize, with static fallback content.
// Refresh never fails, the worst outcome is the fallback list.
type Source struct {
	fetcher   DocumentFetcher
	extractor *Extractor
	urls      []string
	userAgent string
}

// NewSource makes a news source for the feed urls, ordered by preference
func NewSource(fetcher DocumentFetcher, urls []string, userAgent string) *Source {
	return &Source{
		fetcher:   fetcher,
		extractor: NewExtractor(),
		urls:      urls,
		userAgent: userAgent,
	}
}

// Refresh fetches and parses the news feed
func (s *Source) Refresh(ctx context.Context) Result {
	state := s.transition(StateIdle, StateFetching)

	doc, err := s.fetcher.Fetch(ctx, s.urls, s.userAgent)
	if err != nil {
		lgr.Printf("[WARN] news feeds unavailable: %v", err)
		return s.fallback(state, err)
	}

	state = s.transition(state, StateParsing)
	items, err := s.parse(doc)
	if len(items) == 0 {
		if err == nil {
			err = ErrEmptyResult
		}
		lgr.Printf("[WARN] no news items in %s: %v", doc.URL, err)
		return s.fallback(state, err)
	}
	if err != nil {
		lgr.Printf("[WARN] partial news feed %s, %d items kept: %v", doc.URL, len(items), err)
	}

	s.transition(state, StateDone)
	lgr.Printf("[DEBUG] got %d news items from %s", len(items), doc.URL)
	return Result{Items: items, State: StateDone, URL: doc.URL, Err: err}
}

// parse checks the document is a feed at all and extracts items from it
func (s *Source) parse(doc Document) ([]domain.FeedItem, error) {
	switch ft := gofeed.DetectFeedType(bytes.NewReader(doc.Body)); ft {
	case gofeed.FeedTypeRSS, gofeed.FeedTypeAtom:
	default:
		return nil, fmt.Errorf("%w: not an rss document", ErrParse)
	}
	return s.extractor.ParseReader(bytes.NewReader(doc.Body))
}

func (s *Source) fallback(from State, err error) Result {
	s.transition(from, StateFallback)
	return Result{Items: FallbackItems(), State: StateFallback, Err: err}
}

func (s *Source) transition(from, to State) State {
	lgr.Printf("[DEBUG] news refresh %s -> %s", from, to)
	return to
}
