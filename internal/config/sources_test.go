package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/lexicrawl/internal/config"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	t.Parallel()

	path := writeSourcesFile(t, `
sources:
  - name: lemonde
    url: https://www.lemonde.fr
    enabled: true
    article_url_patterns:
      - /article/
    junk_patterns:
      - lire aussi
    selectors:
      title: h1.article-title
      body: section.article-content
      date: time.meta-date
      exclude:
        - .ad
        - .related
  - name: disabled-site
    enabled: false
`)

	sources, err := config.LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}

	lemonde := sources[0]
	if lemonde.Name != "lemonde" || !lemonde.Enabled {
		t.Errorf("unexpected first source: %+v", lemonde)
	}
	if lemonde.Selectors.Body != "section.article-content" {
		t.Errorf("body selector = %q", lemonde.Selectors.Body)
	}
	if len(lemonde.Selectors.Exclude) != 2 {
		t.Errorf("exclude = %v", lemonde.Selectors.Exclude)
	}
	if len(lemonde.JunkPatterns) != 1 {
		t.Errorf("junk patterns = %v", lemonde.JunkPatterns)
	}

	if sources[1].Enabled {
		t.Error("second source should be disabled")
	}
}

func TestLoadSources_Empty(t *testing.T) {
	t.Parallel()

	path := writeSourcesFile(t, "sources: []\n")

	_, err := config.LoadSources(path)
	if !errors.Is(err, config.ErrNoSources) {
		t.Errorf("error = %v, want ErrNoSources", err)
	}
}

func TestLoadSources_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "sources:\n  - url: https://example.com\n    enabled: true\n"},
		{"missing url", "sources:\n  - name: x\n    enabled: true\n    selectors: {body: div}\n"},
		{"missing body selector", "sources:\n  - name: x\n    url: https://example.com\n    enabled: true\n"},
		{"duplicate names", "sources:\n  - name: x\n    enabled: false\n  - name: x\n    enabled: false\n"},
		{"malformed yaml", "sources: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeSourcesFile(t, tt.content)
			if _, err := config.LoadSources(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadSources_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.LoadSources(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *config.Config {
		return &config.Config{
			App: config.AppConfig{Name: "lexicrawl", Environment: "development"},
			Crawler: config.CrawlerConfig{
				CacheDir:             "cache",
				MaxArticlesPerSource: 10,
				ArticleTimeout:       config.DefaultArticleTimeout,
			},
			Output:      config.OutputConfig{Directory: "output", TopWords: 10},
			SourcesFile: "sources.yml",
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad environment", func(c *config.Config) { c.App.Environment = "prod" }},
		{"zero max articles", func(c *config.Config) { c.Crawler.MaxArticlesPerSource = 0 }},
		{"zero timeout", func(c *config.Config) { c.Crawler.ArticleTimeout = 0 }},
		{"offline without cache dir", func(c *config.Config) {
			c.Crawler.OfflineMode = true
			c.Crawler.CacheDir = ""
		}},
		{"no output dir", func(c *config.Config) { c.Output.Directory = "" }},
		{"zero top words", func(c *config.Config) { c.Output.TopWords = 0 }},
		{"no sources file", func(c *config.Config) { c.SourcesFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
