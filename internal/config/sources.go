package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoSources is returned when the sources file defines no sources.
var ErrNoSources = errors.New("no sources defined")

// Source describes one configured news origin.
type Source struct {
	// Name identifies the source; must be unique
	Name string `yaml:"name"`
	// URL is the homepage to discover articles on
	URL string `yaml:"url"`
	// Enabled gates processing of the source
	Enabled bool `yaml:"enabled"`
	// ArticleURLPatterns mark links as articles; empty means slug heuristic
	ArticleURLPatterns []string `yaml:"article_url_patterns"`
	// JunkPatterns are parsing-artifact strings dropped during tokenization
	JunkPatterns []string `yaml:"junk_patterns"`
	// Selectors drive article content extraction
	Selectors SourceSelectors `yaml:"selectors"`
}

// SourceSelectors are the CSS selectors for one source.
type SourceSelectors struct {
	// Title selects the article headline
	Title string `yaml:"title"`
	// Body selects the article text container
	Body string `yaml:"body"`
	// Date selects the publication date element
	Date string `yaml:"date"`
	// Exclude lists sub-selectors removed before text extraction
	Exclude []string `yaml:"exclude"`
}

// sourcesFile is the on-disk shape of the sources file.
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads and validates the YAML sources file. A file with no
// sources is a startup failure.
func LoadSources(path string) ([]Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}

	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
	}

	seen := make(map[string]struct{}, len(f.Sources))
	for i := range f.Sources {
		src := &f.Sources[i]
		if src.Name == "" {
			return nil, fmt.Errorf("source %d: name must be specified", i)
		}
		if _, dup := seen[src.Name]; dup {
			return nil, fmt.Errorf("duplicate source name: %s", src.Name)
		}
		seen[src.Name] = struct{}{}

		if !src.Enabled {
			continue
		}
		if src.URL == "" {
			return nil, fmt.Errorf("source %s: url must be specified", src.Name)
		}
		if src.Selectors.Body == "" {
			return nil, fmt.Errorf("source %s: selectors.body must be specified", src.Name)
		}
	}

	return f.Sources, nil
}
