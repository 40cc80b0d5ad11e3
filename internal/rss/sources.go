package rss

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one configured feed.
type Source struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// FeedsConfig is YAML config structure
// feeds:
//   - title: KrebsOnSecurity
//     url: https://krebsonsecurity.com/feed/
type FeedsConfig struct {
	Feeds []Source `yaml:"feeds"`
}

// DefaultSources returns the built-in cybersecurity feeds.
func DefaultSources() []Source {
	return []Source{
		{Title: "Graham Cluley", URL: "https://grahamcluley.com/feed/"},
		{Title: "Schneier on Security", URL: "https://www.schneier.com/tag/cybersecurity/feed/"},
		{Title: "KrebsOnSecurity", URL: "https://krebsonsecurity.com/feed/"},
		{Title: "CSO Online", URL: "https://www.csoonline.com/feed/"},
		{Title: "Dark Reading", URL: "https://www.darkreading.com/rss.xml"},
		{Title: "We Live Security (ESET)", URL: "https://www.welivesecurity.com/en/rss/feed/"},
		{Title: "Sophos News", URL: "https://news.sophos.com/en-us/feed/"},
		{Title: "Cyberbuilders Substack", URL: "https://cyberbuilders.substack.com/feed"},
		{Title: "The Hacker News", URL: "https://feeds.feedburner.com/TheHackersNews"},
		{Title: "Zero Day Initiative", URL: "https://www.zerodayinitiative.com/rss/published/"},
	}
}

// LoadSources reads the feed list from a YAML file.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("%s: no feeds configured", path)
	}
	for i, s := range cfg.Feeds {
		if s.Title == "" || s.URL == "" {
			return nil, fmt.Errorf("%s: feed #%d needs both title and url", path, i+1)
		}
	}
	return cfg.Feeds, nil
}
