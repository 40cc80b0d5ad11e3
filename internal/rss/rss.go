package rss

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/deusflow/secdigest/internal/window"
)

// Article is one parsed feed entry, before any window filtering.
type Article struct {
	Title       string
	Link        string
	PubDate     string     // feed-native format
	Published   *time.Time // nil when PubDate could not be parsed
	Description string
	Snippet     string // plain-text rendering of the entry summary
}

// Ingestor downloads and parses syndication feeds.
type Ingestor struct {
	parser *gofeed.Parser
}

func NewIngestor() *Ingestor {
	parser := gofeed.NewParser()
	parser.UserAgent = "secdigest/1.0 (+https://github.com/deusflow/secdigest)"
	return &Ingestor{parser: parser}
}

// Fetch downloads and parses one feed.
func (in *Ingestor) Fetch(ctx context.Context, url string) ([]Article, error) {
	feed, err := in.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, toArticle(item))
	}
	return articles, nil
}

func toArticle(item *gofeed.Item) Article {
	a := Article{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: item.Description,
	}

	switch {
	case item.Published != "":
		a.PubDate = item.Published
		a.Published = item.PublishedParsed
	case item.Updated != "":
		a.PubDate = item.Updated
		a.Published = item.UpdatedParsed
	}
	if a.Published == nil && a.PubDate != "" {
		if t, err := window.ParseTime(a.PubDate); err == nil {
			a.Published = &t
		}
	}

	// RSS content:encoded holds the full article; Atom entries may only have content.
	body := item.Description
	if strings.TrimSpace(body) == "" {
		body = item.Content
	}
	a.Snippet = plainText(body)

	return a
}

// plainText strips markup from a feed body fragment.
func plainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
