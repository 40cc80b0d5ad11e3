package digest

import "time"

// Item is one enriched digest entry.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	FeedTitle   string `json:"feedTitle"`
	Description string `json:"description"`
	Brief       string `json:"brief"`

	published time.Time
}

// Published is the parsed form of PubDate.
func (i Item) Published() time.Time {
	return i.published
}
