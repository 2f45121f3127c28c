package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/clubfeed/pkg/domain"
)

// Generator re-publishes collected news items as an RSS feed
type Generator struct {
	baseURL string
	title   string
	policy  *bluemonday.Policy
}

// NewGenerator creates a new feed generator for the service located at baseURL
func NewGenerator(baseURL, title string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		title:   title,
		policy:  bluemonday.UGCPolicy(),
	}
}

// GenerateRSS creates an RSS 2.0 feed from news items. Fallback items are marked with "placeholder" category.
func (g *Generator) GenerateRSS(items []domain.FeedItem, fallback bool, now time.Time) (string, error) {
	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItem := g.convertToRSSItem(item)
		if fallback {
			rssItem.Category = "placeholder"
		}
		rssItems = append(rssItems, rssItem)
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%s, collected from public feeds", g.title),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/news", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: now.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a news item to an RSS item with html description
func (g *Generator) convertToRSSItem(item domain.FeedItem) *RSSItem {
	res := &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		Description: g.description(item),
	}

	if item.Link != "" {
		res.GUID = &GUID{Value: item.Link, IsPermaLink: true}
	} else {
		res.GUID = &GUID{Value: fmt.Sprintf("%s/news/%d", g.baseURL, item.ID)}
	}

	if item.HasImage() {
		res.Enclosure = &RSSEnclosure{URL: item.ImageURL, Type: imageType(item.ImageURL)}
	}
	return res
}

// description builds html body of the item, image urls come from third-party feeds and are sanitized
func (g *Generator) description(item domain.FeedItem) string {
	var sb strings.Builder
	if item.HasImage() {
		fmt.Fprintf(&sb, `<img src="%s" alt="%s"/>`, html.EscapeString(item.ImageURL), html.EscapeString(item.Title))
	}
	fmt.Fprintf(&sb, "<p>%s</p>", html.EscapeString(item.Summary))
	if item.Published != "" {
		fmt.Fprintf(&sb, "<p><small>%s</small></p>", html.EscapeString(item.Published))
	}
	return g.policy.Sanitize(sb.String())
}

// imageType guesses mime type of the image by url extension, defaults to jpeg
func imageType(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if t := mime.TypeByExtension(path.Ext(u)); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
