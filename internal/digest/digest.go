// Package digest assembles the enriched, date-ranked article list.
package digest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/deusflow/secdigest/internal/logger"
	"github.com/deusflow/secdigest/internal/metrics"
	"github.com/deusflow/secdigest/internal/pacer"
	"github.com/deusflow/secdigest/internal/rss"
	"github.com/deusflow/secdigest/internal/summarizer"
	"github.com/deusflow/secdigest/internal/window"
)

type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]rss.Article, error)
}

type ContentExtractor interface {
	Extract(ctx context.Context, url string) string
}

type Assembler struct {
	Sources      []rss.Source
	Feeds        FeedFetcher
	Extractor    ContentExtractor
	NewCompleter summarizer.Factory
	Pacer        pacer.Pacer
	MinChars     int
}

// Generate runs the full pipeline for one request. Per-source and per-item
// failures are absorbed; only request-level problems are returned.
func (a *Assembler) Generate(ctx context.Context, w window.Window, apiKey string) (items []Item, err error) {
	startTime := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(startTime))
		if err != nil {
			metrics.Global.SetError(err.Error())
			return
		}
		metrics.Global.SetLastRun()
		metrics.Global.IncrementDigestsGenerated()
	}()

	items = a.collect(ctx, w)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].published.After(items[j].published)
	})

	if len(items) == 0 {
		logger.Info("no articles in window", "window", w.String())
		return items, nil
	}

	if err = a.enrich(ctx, items, apiKey); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *Assembler) collect(ctx context.Context, w window.Window) []Item {
	items := []Item{}
	for _, src := range a.Sources {
		logger.Info("processing source", "feed", src.Title)

		articles, err := a.Feeds.Fetch(ctx, src.URL)
		if err != nil {
			logger.Error("error fetching source", "feed", src.Title, "error", err)
			metrics.Global.IncrementSourcesFailed()
			continue
		}

		kept := filterArticles(src, articles, w)
		logger.Debug("source filtered", "feed", src.Title, "fetched", len(articles), "kept", len(kept))
		items = append(items, kept...)
	}
	return items
}

func (a *Assembler) enrich(ctx context.Context, items []Item, apiKey string) error {
	completer, err := a.NewCompleter(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("create summarization client: %w", err)
	}
	defer completer.Close()

	s := summarizer.New(completer, a.MinChars)
	p := a.Pacer
	if p == nil {
		p = pacer.None{}
	}

	logger.Info("generating briefs", "count", len(items))
	for i := range items {
		if err := p.Wait(ctx); err != nil {
			return fmt.Errorf("enrichment interrupted at item %d/%d: %w", i+1, len(items), err)
		}

		content := a.Extractor.Extract(ctx, items[i].Link)
		items[i].Brief = s.Brief(ctx, items[i].Link, items[i].Title, content)
		metrics.Global.IncrementArticlesEnriched()
	}
	logger.Info("brief generation completed", "count", len(items))
	return nil
}
