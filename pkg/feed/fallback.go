package feed

import "github.com/umputun/clubfeed/pkg/domain"

// FallbackItems returns static placeholder news shown when no live item could be obtained
func FallbackItems() []domain.FeedItem {
	return []domain.FeedItem{
		{
			ID:        1,
			Title:     "Manchester United Training Update",
			Summary:   "The squad continues preparations ahead of the upcoming fixture. Check back soon for live updates.",
			Published: "Today",
		},
		{
			ID:        2,
			Title:     "Match Preview: Upcoming Fixture",
			Summary:   "All you need to know ahead of Manchester United's next match. Team news and analysis.",
			Published: "Today",
		},
		{
			ID:        3,
			Title:     "Club Statement",
			Summary:   "Stay tuned for the latest official news from Manchester United.",
			Published: "Today",
		},
	}
}
