package digest

import (
	"github.com/deusflow/secdigest/internal/logger"
	"github.com/deusflow/secdigest/internal/metrics"
	"github.com/deusflow/secdigest/internal/rss"
	"github.com/deusflow/secdigest/internal/window"
)

// filterArticles keeps the articles published inside w and tags them with
// the source's display title.
func filterArticles(src rss.Source, articles []rss.Article, w window.Window) []Item {
	var items []Item
	for _, a := range articles {
		if a.Published == nil {
			logger.Warn("invalid publish date, skipping", "feed", src.Title, "title", a.Title, "pubDate", a.PubDate)
			metrics.Global.IncrementInvalidDates()
			continue
		}
		if !w.Contains(*a.Published) {
			continue
		}
		items = append(items, Item{
			Title:       a.Title,
			Link:        a.Link,
			PubDate:     a.PubDate,
			FeedTitle:   src.Title,
			Description: description(a),
			published:   *a.Published,
		})
	}
	return items
}

func description(a rss.Article) string {
	if a.Snippet != "" {
		return a.Snippet
	}
	return a.Description
}
