// Package config provides configuration management for the application.
// It handles loading, validation, and access to configuration values from
// a YAML file and environment variables via Viper, plus the YAML sources
// file describing the news sites to process.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// Default configuration values
const (
	DefaultMaxArticlesPerSource = 10
	DefaultArticleTimeout       = 30 * time.Second
	DefaultUserAgent            = "lexicrawl/1.0"
	DefaultMaxBodySize          = 10 * 1024 * 1024 // 10MB
	DefaultOutputDirectory      = "output"
	DefaultCacheDirectory       = "cache"
	DefaultSourcesFile          = "sources.yml"
	DefaultTopWords             = 10
)

// Config represents the application configuration.
type Config struct {
	// App holds application-level settings
	App AppConfig `mapstructure:"app"`
	// Crawler holds fetch/discovery settings
	Crawler CrawlerConfig `mapstructure:"crawler"`
	// Output holds output sink settings
	Output OutputConfig `mapstructure:"output"`
	// Logger holds logging settings
	Logger logger.Config `mapstructure:"logger"`
	// SourcesFile is the path to the YAML sources file
	SourcesFile string `mapstructure:"sources_file"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// Name is the application name
	Name string `mapstructure:"name"`
	// Environment is the application environment (development, staging, production)
	Environment string `mapstructure:"environment"`
	// Debug enables debug logging regardless of logger level
	Debug bool `mapstructure:"debug"`
}

// CrawlerConfig holds fetch and discovery settings.
type CrawlerConfig struct {
	// OfflineMode switches discovery and fetching to cached data on disk
	OfflineMode bool `mapstructure:"offline_mode"`
	// CacheDir is where offline URL lists and HTML pages live
	CacheDir string `mapstructure:"cache_dir"`
	// MaxArticlesPerSource caps how many article URLs are processed per source
	MaxArticlesPerSource int `mapstructure:"max_articles_per_source"`
	// ArticleTimeout bounds the processing of one article
	ArticleTimeout time.Duration `mapstructure:"article_timeout"`
	// UserAgent is sent on outbound requests
	UserAgent string `mapstructure:"user_agent"`
	// MaxBodySize caps response bodies in bytes
	MaxBodySize int `mapstructure:"max_body_size"`
}

// OutputConfig holds output sink settings.
type OutputConfig struct {
	// Directory is where daily CSV files are written
	Directory string `mapstructure:"directory"`
	// TopWords is how many top-frequency words get a context sentence
	TopWords int `mapstructure:"top_words"`
}

// Load unmarshals the configuration from the already-initialized Viper
// instance and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SetDefaults registers default values on the global Viper instance. Called
// once during CLI initialization, before the config file is read.
func SetDefaults() {
	viper.SetDefault("app.name", "lexicrawl")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("crawler.offline_mode", false)
	viper.SetDefault("crawler.cache_dir", DefaultCacheDirectory)
	viper.SetDefault("crawler.max_articles_per_source", DefaultMaxArticlesPerSource)
	viper.SetDefault("crawler.article_timeout", DefaultArticleTimeout)
	viper.SetDefault("crawler.user_agent", DefaultUserAgent)
	viper.SetDefault("crawler.max_body_size", DefaultMaxBodySize)
	viper.SetDefault("output.directory", DefaultOutputDirectory)
	viper.SetDefault("output.top_words", DefaultTopWords)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.development", false)
	viper.SetDefault("sources_file", DefaultSourcesFile)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
		// Valid environment
	default:
		return fmt.Errorf("invalid environment: %s", c.App.Environment)
	}

	if c.Crawler.MaxArticlesPerSource <= 0 {
		return errors.New("crawler.max_articles_per_source must be positive")
	}
	if c.Crawler.ArticleTimeout <= 0 {
		return errors.New("crawler.article_timeout must be positive")
	}
	if c.Crawler.OfflineMode && c.Crawler.CacheDir == "" {
		return errors.New("crawler.cache_dir must be set in offline mode")
	}
	if c.Output.Directory == "" {
		return errors.New("output.directory must be specified")
	}
	if c.Output.TopWords <= 0 {
		return errors.New("output.top_words must be positive")
	}
	if c.SourcesFile == "" {
		return errors.New("sources_file must be specified")
	}

	return nil
}
