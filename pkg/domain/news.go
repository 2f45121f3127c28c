package domain

// FeedItem is a single news entry extracted from an RSS document
type FeedItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"image_url,omitempty"` // empty if the item carried no image
	Published string `json:"published"`         // short label, e.g. "19 Nov"
	Link      string `json:"link,omitempty"`
}

// HasImage reports whether the item carries an image url
func (f FeedItem) HasImage() bool {
	return f.ImageURL != ""
}
