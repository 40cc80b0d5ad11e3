package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/deusflow/secdigest/internal/logger"
)

// DefaultExclusions lists the elements dropped before text extraction.
var DefaultExclusions = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	".sidebar",
	".related-posts",
	".comments",
	"form",
}

const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxChars = 4000

	// DefaultMaxBodyBytes caps how much of a page is parsed.
	DefaultMaxBodyBytes = 5 << 20
)

// Extractor pulls the readable text of an article page.
type Extractor struct {
	client     *http.Client
	exclusions []string
	maxChars   int
	maxBody    int64
}

type Option func(*Extractor)

func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.client.Timeout = d
		}
	}
}

func WithMaxChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxChars = n
		}
	}
}

func WithMaxBodyBytes(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxBody = n
		}
	}
}

func WithExclusions(selectors []string) Option {
	return func(e *Extractor) {
		e.exclusions = selectors
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		client:     &http.Client{Timeout: DefaultTimeout},
		exclusions: DefaultExclusions,
		maxChars:   DefaultMaxChars,
		maxBody:    DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the cleaned page text, or "" on any failure.
func (e *Extractor) Extract(ctx context.Context, url string) string {
	text, err := e.extract(ctx, url)
	if err != nil {
		logger.Error("scrape failed", "url", url, "error", err)
		return ""
	}
	logger.Debug("scraped article", "url", url, "chars", len([]rune(text)))
	return text
}

func (e *Extractor) extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, e.maxBody))
	if err != nil {
		return "", fmt.Errorf("error parsing HTML: %w", err)
	}

	return e.cleanText(doc), nil
}

func (e *Extractor) cleanText(doc *goquery.Document) string {
	if len(e.exclusions) > 0 {
		doc.Find(strings.Join(e.exclusions, ", ")).Remove()
	}
	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	return truncate(text, e.maxChars)
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
