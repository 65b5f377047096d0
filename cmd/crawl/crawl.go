// Package crawl implements the crawl command for fetching news articles and
// recording their vocabulary.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/lexicrawl/cmd/common"
	"github.com/jonesrussell/lexicrawl/internal/config"
	"github.com/jonesrussell/lexicrawl/internal/crawler"
	"github.com/jonesrussell/lexicrawl/internal/logger"
	"github.com/jonesrussell/lexicrawl/internal/output"
	"github.com/jonesrussell/lexicrawl/internal/parser"
	"github.com/jonesrussell/lexicrawl/internal/scraper"
)

// Command returns the crawl command for use in the root command.
func Command() *cobra.Command {
	var (
		sourceName  string
		maxArticles int
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl configured sources and record vocabulary",
		Long: `This command discovers article URLs on each enabled source's homepage,
fetches and parses the articles, analyzes their French text, and appends
word frequency rows to today's CSV file.

The --source flag restricts the run to one configured source. The
--max-articles flag overrides the max_articles_per_source setting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			return run(cmd.Context(), deps, sourceName, maxArticles)
		},
	}

	cmd.Flags().StringVar(&sourceName, "source", "",
		"Process only the named source (default is all enabled sources)")
	cmd.Flags().IntVar(&maxArticles, "max-articles", 0,
		"Override the max_articles_per_source setting (0 means use config)")

	return cmd
}

// Run executes one full crawl over all enabled sources. Used by the
// schedule command for recurring runs.
func Run(ctx context.Context, deps *common.CommandDeps) error {
	return run(ctx, deps, "", 0)
}

// run wires the full pipeline and executes one crawl.
func run(ctx context.Context, deps *common.CommandDeps, sourceName string, maxOverride int) error {
	cfg := deps.Config
	log := deps.Logger.With("run_id", uuid.NewString())

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		if errors.Is(err, config.ErrNoSources) {
			log.Info("No sources found in configuration. Please add sources to your sources file.")
			log.Info("You can use the 'sources list' command to view configured sources.")
			return nil
		}
		return fmt.Errorf("failed to load sources: %w", err)
	}

	if sourceName != "" {
		sources, err = filterSource(sources, sourceName)
		if err != nil {
			return err
		}
	}

	sink, err := output.NewSink(cfg.Output.Directory, log)
	if err != nil {
		return fmt.Errorf("failed to create output sink: %w", err)
	}

	registry, err := buildRegistry(cfg, sources, log)
	if err != nil {
		return fmt.Errorf("failed to build source registry: %w", err)
	}

	maxArticles := cfg.Crawler.MaxArticlesPerSource
	if maxOverride > 0 {
		log.Info("Overriding max_articles_per_source with flag value", "max_articles", maxOverride)
		maxArticles = maxOverride
	}

	pipeline := crawler.NewPipeline(sink, log, crawler.PipelineConfig{
		ArticleTimeout: cfg.Crawler.ArticleTimeout,
		TopWords:       cfg.Output.TopWords,
	})
	orchestrator := crawler.NewOrchestrator(registry, pipeline, log, maxArticles)

	// Interrupt cancels in-flight articles; completed rows stay on disk
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Crawl starting",
		"sources", len(sources),
		"offline", cfg.Crawler.OfflineMode,
		"output", sink.PathForToday(),
	)

	tallies, total := orchestrator.Run(ctx, sources)
	renderTallies(tallies, total, sink.PathForToday())

	if ctx.Err() != nil {
		log.Info("Crawl interrupted")
		return ctx.Err()
	}
	return nil
}

// filterSource narrows the source list to the one named on the command line.
func filterSource(sources []config.Source, name string) ([]config.Source, error) {
	for i := range sources {
		if sources[i].Name == name {
			return sources[i : i+1], nil
		}
	}
	return nil, fmt.Errorf("source %s not found in sources file", name)
}

// buildRegistry registers discovery and parsing capabilities for every
// enabled source. Offline mode swaps both for their cache-backed variants.
func buildRegistry(cfg *config.Config, sources []config.Source, log logger.Interface) (*crawler.Registry, error) {
	registry := crawler.NewRegistry()

	for i := range sources {
		src := &sources[i]
		if !src.Enabled {
			continue
		}

		if err := registry.Register(src.Name, buildCapabilities(cfg, src, log)); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// buildCapabilities constructs the (scraper, parser) pair for one source.
func buildCapabilities(cfg *config.Config, src *config.Source, log logger.Interface) crawler.Capabilities {
	parserCfg := parser.Config{
		Source: src.Name,
		Selectors: parser.Selectors{
			Title:   src.Selectors.Title,
			Body:    src.Selectors.Body,
			Date:    src.Selectors.Date,
			Exclude: src.Selectors.Exclude,
		},
		UserAgent:   cfg.Crawler.UserAgent,
		MaxBodySize: int64(cfg.Crawler.MaxBodySize),
		Timeout:     cfg.Crawler.ArticleTimeout,
	}

	if cfg.Crawler.OfflineMode {
		return crawler.Capabilities{
			Scraper: scraper.NewOfflineScraper(src.Name, cfg.Crawler.CacheDir, log),
			Parser:  parser.NewOfflineParser(parserCfg, cfg.Crawler.CacheDir, log),
		}
	}

	return crawler.Capabilities{
		Scraper: scraper.NewHomepageScraper(scraper.Config{
			Name:               src.Name,
			URL:                src.URL,
			ArticleURLPatterns: src.ArticleURLPatterns,
			UserAgent:          cfg.Crawler.UserAgent,
			MaxBodySize:        cfg.Crawler.MaxBodySize,
			Timeout:            cfg.Crawler.ArticleTimeout,
		}, log),
		Parser: parser.NewArticleParser(parserCfg, log),
	}
}
