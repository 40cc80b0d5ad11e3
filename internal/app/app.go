package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/deusflow/secdigest/internal/config"
	"github.com/deusflow/secdigest/internal/digest"
	"github.com/deusflow/secdigest/internal/handler"
	"github.com/deusflow/secdigest/internal/logger"
	"github.com/deusflow/secdigest/internal/metrics"
	"github.com/deusflow/secdigest/internal/pacer"
	"github.com/deusflow/secdigest/internal/rss"
	"github.com/deusflow/secdigest/internal/scraper"
	"github.com/deusflow/secdigest/internal/summarizer"
)

// Run starts the digest server and blocks until it exits.
func Run() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger.Init(cfg.Debug, cfg.LogFormat)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	sources, err := resolveSources(cfg.FeedsConfigPath)
	if err != nil {
		log.Fatalf("error loading feed list: %v", err)
	}

	assembler := NewAssembler(cfg, sources)

	router := handler.NewRouter(
		handler.NewDigestHandler(assembler, cfg.APIKey),
		handler.NewMonitoringHandler(metrics.Global),
		cfg.StaticDir,
	)

	logger.Info("cybersecurity digest server started", "addr", "http://localhost:"+cfg.Port, "sources", len(sources), "provider", cfg.LLMProvider)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// NewAssembler wires the pipeline stages from configuration.
func NewAssembler(cfg *config.Config, sources []rss.Source) *digest.Assembler {
	return &digest.Assembler{
		Sources: sources,
		Feeds:   rss.NewIngestor(),
		Extractor: scraper.NewExtractor(
			scraper.WithTimeout(cfg.ScrapeTimeout),
			scraper.WithMaxChars(cfg.ScrapeMaxChars),
		),
		NewCompleter: completerFactory(cfg),
		Pacer:        pacer.Fixed{Delay: cfg.EnrichDelay},
		MinChars:     cfg.MinContentChars,
	}
}

func completerFactory(cfg *config.Config) summarizer.Factory {
	if cfg.LLMProvider == config.ProviderGemini {
		return summarizer.GeminiFactory(cfg.LLMModel, cfg.LLMTemperature)
	}
	return summarizer.OpenAIFactory(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTemperature)
}

// resolveSources prefers the YAML feed list and falls back to the built-in one
// when the file does not exist.
func resolveSources(path string) ([]rss.Source, error) {
	if path == "" {
		return rss.DefaultSources(), nil
	}
	sources, err := rss.LoadSources(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("feed list not found, using built-in sources", "path", path)
		return rss.DefaultSources(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sources, nil
}

var _ handler.DigestGenerator = (*digest.Assembler)(nil)

