package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoItemsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
	<title>BBC Sport - Manchester United</title>
	<item>
		<title>Amorim praises squad</title>
		<description>Head coach pleased with response.</description>
		<link>https://www.bbc.co.uk/sport/football/1</link>
		<pubDate>Tue, 18 Nov 2025 20:15:00 GMT</pubDate>
		<media:thumbnail width="240" height="135" url="https://ichef.example.com/240/1.jpg"/>
	</item>
	<item>
		<title>Get in touch with BBC Sport</title>
	</item>
	<item>
		<title>Mainoo signs new deal</title>
		<description>Midfielder commits future.</description>
		<link>https://www.bbc.co.uk/sport/football/2</link>
		<pubDate>Wed, 19 Nov 2025 08:00:00 GMT</pubDate>
	</item>
</channel>
</rss>`

func TestSource_Refresh(t *testing.T) {
	t.Run("primary transport failure, secondary valid", func(t *testing.T) {
		secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(twoItemsFeed))
		}))
		defer secondary.Close()

		src := NewSource(NewFetcher(5*time.Second), []string{"http://127.0.0.1:1/rss", secondary.URL}, "Mozilla/5.0")
		res := src.Refresh(context.Background())

		assert.Equal(t, StateDone, res.State)
		assert.Equal(t, secondary.URL, res.URL)
		assert.NoError(t, res.Err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, 0, res.Items[0].ID)
		assert.Equal(t, "Amorim praises squad", res.Items[0].Title)
		assert.Equal(t, "18 Nov", res.Items[0].Published)
		assert.Equal(t, "https://ichef.example.com/240/1.jpg", res.Items[0].ImageURL)
		assert.Equal(t, 1, res.Items[1].ID)
		assert.Equal(t, "Mainoo signs new deal", res.Items[1].Title)
		assert.NotEqual(t, FallbackItems(), res.Items)
	})

	t.Run("both feeds fail", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failing.Close()

		src := NewSource(NewFetcher(5*time.Second), []string{"http://127.0.0.1:1/rss", failing.URL}, "Mozilla/5.0")
		res := src.Refresh(context.Background())

		assert.Equal(t, StateFallback, res.State)
		assert.Empty(t, res.URL)
		assert.True(t, errors.Is(res.Err, ErrNoFeed))
		require.Len(t, res.Items, 3)
		for i, item := range res.Items {
			assert.Equal(t, i+1, item.ID)
			assert.Equal(t, "Today", item.Published)
			assert.Empty(t, item.ImageURL)
		}
	})

	t.Run("feed without qualifying items", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss version="2.0"><channel><item><title>Get in touch</title></item></channel></rss>`))
		}))
		defer ts.Close()

		res := NewSource(NewFetcher(5*time.Second), []string{ts.URL}, "Mozilla/5.0").Refresh(context.Background())
		assert.Equal(t, StateFallback, res.State)
		assert.True(t, errors.Is(res.Err, ErrEmptyResult))
		assert.Equal(t, FallbackItems(), res.Items)
	})

	t.Run("primary body is not a feed, secondary not tried", func(t *testing.T) {
		calls := 0
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>blocked</body></html>"))
		}))
		defer primary.Close()
		secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte(twoItemsFeed))
		}))
		defer secondary.Close()

		res := NewSource(NewFetcher(5*time.Second), []string{primary.URL, secondary.URL}, "Mozilla/5.0").Refresh(context.Background())
		assert.Equal(t, StateFallback, res.State)
		assert.True(t, errors.Is(res.Err, ErrParse))
		assert.Equal(t, 0, calls)
	})

	t.Run("truncated feed keeps partial items", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss version="2.0"><channel><item><title>Kept</title></item><item><title>Lost`))
		}))
		defer ts.Close()

		res := NewSource(NewFetcher(5*time.Second), []string{ts.URL}, "Mozilla/5.0").Refresh(context.Background())
		assert.Equal(t, StateDone, res.State)
		assert.True(t, errors.Is(res.Err, ErrParse))
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Kept", res.Items[0].Title)
	})
}

type fetcherFunc func(ctx context.Context, urls []string, userAgent string) (Document, error)

func (f fetcherFunc) Fetch(ctx context.Context, urls []string, userAgent string) (Document, error) {
	return f(ctx, urls, userAgent)
}

func TestSource_Refresh_PassesURLsAndAgent(t *testing.T) {
	var gotURLs []string
	var gotAgent string
	f := fetcherFunc(func(_ context.Context, urls []string, userAgent string) (Document, error) {
		gotURLs, gotAgent = urls, userAgent
		return Document{URL: urls[0], Body: []byte(twoItemsFeed)}, nil
	})

	res := NewSource(f, []string{"https://a.example.com/rss", "https://b.example.com/rss"}, "Mozilla/5.0").Refresh(context.Background())
	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, []string{"https://a.example.com/rss", "https://b.example.com/rss"}, gotURLs)
	assert.Equal(t, "Mozilla/5.0", gotAgent)
	assert.Len(t, res.Items, 2)
}
