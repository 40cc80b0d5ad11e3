package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
)

type Config struct {
	// HTTP settings
	Port      string
	StaticDir string

	// Language model settings
	APIKey         string
	LLMProvider    string // openrouter | openai | gemini
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float32

	// Feed settings
	FeedsConfigPath string

	// Enrichment settings
	EnrichDelay     time.Duration
	ScrapeTimeout   time.Duration
	ScrapeMaxChars  int
	MinContentChars int

	// App settings
	Debug     bool
	LogFormat string // text | json
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Port:            "3000",
		LLMProvider:     ProviderOpenRouter,
		LLMTemperature:  0.7,
		FeedsConfigPath: "configs/feeds.yaml",
		EnrichDelay:     1500 * time.Millisecond,
		ScrapeTimeout:   10 * time.Second,
		ScrapeMaxChars:  4000,
		MinContentChars: 100,
		LogFormat:       "text",
	}

	// Load from environment
	cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("LLM_API_KEY")
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.StaticDir = os.Getenv("STATIC_DIR")
	cfg.LLMProvider = getEnvOrDefault("LLM_PROVIDER", cfg.LLMProvider)
	cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	cfg.LLMModel = os.Getenv("LLM_MODEL")
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if val, err := strconv.ParseFloat(v, 32); err == nil && val >= 0 && val <= 2 {
			cfg.LLMTemperature = float32(val)
		}
	}

	cfg.EnrichDelay = getEnvDurationOrDefault("ENRICH_DELAY", cfg.EnrichDelay)
	cfg.ScrapeTimeout = getEnvDurationOrDefault("SCRAPE_TIMEOUT", cfg.ScrapeTimeout)
	cfg.ScrapeMaxChars = getEnvIntOrDefault("SCRAPE_MAX_CHARS", cfg.ScrapeMaxChars)
	cfg.MinContentChars = getEnvIntOrDefault("MIN_CONTENT_CHARS", cfg.MinContentChars)

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	if cfg.LLMBaseURL == "" && cfg.LLMProvider == ProviderOpenRouter {
		cfg.LLMBaseURL = "https://openrouter.ai/api/v1"
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	switch c.LLMProvider {
	case ProviderOpenRouter, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be 'openrouter', 'openai' or 'gemini'")
	}
	return nil
}
