package feed

import (
	"fmt"
	"io"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"

	"github.com/umputun/clubfeed/pkg/domain"
)

// excludedTitle marks promotional items which are not news
const excludedTitle = "get in touch"

// preferredWidths are media:content widths which replace an already captured image.
// These are the sizes one specific publisher (the Guardian) emits, not a general RSS rule.
var preferredWidths = map[string]bool{"460": true, "700": true}

// knownSpaces maps namespace urls of common feed extensions to their conventional prefixes
var knownSpaces = map[string]string{
	"http://search.yahoo.com/mrss/":            "media",
	"http://search.yahoo.com/mrss":             "media",
	"http://purl.org/rss/1.0/modules/content/": "content",
	"http://purl.org/dc/elements/1.1/":         "dc",
}

// Extractor pulls news items out of RSS documents in a single forward pass.
// Element names are matched as written in the document ("media:content"), without namespace resolution.
type Extractor struct{}

// NewExtractor makes an extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Parse extracts items from the document string
func (e *Extractor) Parse(doc string) ([]domain.FeedItem, error) {
	return e.ParseReader(strings.NewReader(doc))
}

// ParseReader extracts items from the document stream. On a malformed document it stops and
// returns items emitted so far together with an ErrParse error.
func (e *Extractor) ParseReader(r io.Reader) ([]domain.FeedItem, error) {
	p := xpp.NewXMLPullParser(r, false, charset.NewReaderLabel)

	items := []domain.FeedItem{}
	var cur *scratch // nil outside of an item
	nextID := 0

	for {
		event, err := p.Next()
		if err != nil {
			return items, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch event {
		case xpp.EndDocument:
			return items, nil

		case xpp.Text:
			if cur != nil {
				cur.text(p.Text)
			}

		case xpp.StartTag:
			name := tagName(p)
			if name == "item" {
				cur = &scratch{}
				continue
			}
			if cur == nil {
				continue
			}
			cur.startTag(p, name)

		case xpp.EndTag:
			if cur != nil {
				cur.capture = nil
			}
			if cur == nil || tagName(p) != "item" {
				continue
			}
			if item, ok := cur.build(nextID); ok {
				items = append(items, item)
				nextID++
			}
			cur = nil
		}
	}
}

// scratch collects fields of the item being parsed, reset on every "item" start
type scratch struct {
	title       string
	description string
	link        string
	pubDate     string
	image       string

	capture  *string // field receiving text of the current element, nil if text is ignored
	captured bool    // capture already got text from the current element
}

// startTag handles a child element of an item
func (s *scratch) startTag(p *xpp.XMLPullParser, name string) {
	s.capture, s.captured = nil, false
	switch name {
	case "title":
		s.capture = &s.title
	case "description":
		s.capture = &s.description
	case "link":
		s.capture = &s.link
	case "pubDate":
		s.capture = &s.pubDate
	case "media:thumbnail":
		s.image = p.Attribute("url")
	case "media:content":
		if s.image == "" || preferredWidths[p.Attribute("width")] {
			s.image = p.Attribute("url")
		}
	case "enclosure":
		if s.image == "" {
			s.image = p.Attribute("url")
		}
	}
}

// text stores character data of the captured element. Whitespace and CDATA sections come as
// separate events, consecutive ones are joined. An element without text leaves the field as is.
func (s *scratch) text(txt string) {
	if s.capture == nil {
		return
	}
	if !s.captured {
		*s.capture, s.captured = "", true
	}
	*s.capture += txt
}

// build turns the scratch record into an item, ok is false for items which must be skipped
func (s *scratch) build(id int) (domain.FeedItem, bool) {
	s.title, s.link, s.pubDate = strings.TrimSpace(s.title), strings.TrimSpace(s.link), strings.TrimSpace(s.pubDate)
	if s.title == "" || strings.Contains(strings.ToLower(s.title), excludedTitle) {
		return domain.FeedItem{}, false
	}
	return domain.FeedItem{
		ID:        id,
		Title:     s.title,
		Summary:   Summary(s.description),
		ImageURL:  s.image,
		Published: ShortLabel(s.pubDate),
		Link:      s.link,
	}, true
}

// tagName returns the element name the way it is written in the document, i.e. "media:content".
// The parser resolves prefixes to namespace urls, so the prefix is looked up back from the declared spaces.
func tagName(p *xpp.XMLPullParser) string {
	if p.Space == "" {
		return p.Name
	}
	prefix := p.Space
	if pf, ok := p.Spaces[p.Space]; ok {
		prefix = pf
	} else if pf, ok := knownSpaces[p.Space]; ok {
		prefix = pf
	}
	if prefix == "" { // default namespace
		return p.Name
	}
	return prefix + ":" + p.Name
}
