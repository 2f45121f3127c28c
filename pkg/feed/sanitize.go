package feed

import (
	"regexp"
	"strings"
)

const (
	maxSummaryLen  = 200
	maxRawLabelLen = 16
	defaultSummary = "Manchester United news update"
)

// tagRe matches tag-like substrings, it never crosses a line break
var tagRe = regexp.MustCompile(`<.*?>`)

// entities unescaped in summaries, the rest is kept as is
var entities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// Summary cleans an item description: tags stripped, basic entities unescaped,
// whitespace trimmed and the result cut to 200 characters. Empty result gets a default text.
func Summary(description string) string {
	s := tagRe.ReplaceAllString(description, "")
	s = entities.Replace(s)
	s = strings.TrimSpace(s)
	s = truncate(s, maxSummaryLen)
	if s == "" {
		return defaultSummary
	}
	return s
}

// ShortLabel reduces an RFC-822 like date ("Wed, 19 Nov 2025 12:00:00 GMT") to "19 Nov".
// Dates with less than four tokens are cut to the first 16 characters.
func ShortLabel(pubDate string) string {
	if pubDate == "" {
		return ""
	}
	parts := strings.Fields(pubDate)
	if len(parts) >= 4 {
		return parts[1] + " " + parts[2]
	}
	return truncate(pubDate, maxRawLabelLen)
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if len(s) <= n { // fast path, byte length bounds rune count
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
