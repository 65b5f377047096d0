package crawler

import (
	"context"
	"time"

	"github.com/jonesrussell/lexicrawl/internal/analyzer"
	"github.com/jonesrussell/lexicrawl/internal/config"
	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// Orchestrator drives the pipeline across all configured sources. Sources
// run one after another; articles within a source run concurrently.
type Orchestrator struct {
	registry    *Registry
	pipeline    *Pipeline
	log         logger.Interface
	maxArticles int
}

// NewOrchestrator creates an orchestrator over the given registry and
// pipeline. maxArticles caps discovery per source.
func NewOrchestrator(
	registry *Registry,
	pipeline *Pipeline,
	log logger.Interface,
	maxArticles int,
) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		pipeline:    pipeline,
		log:         log.WithComponent("orchestrator"),
		maxArticles: maxArticles,
	}
}

// Run processes every source and returns per-source tallies plus the
// aggregate. No source failure aborts the run.
func (o *Orchestrator) Run(ctx context.Context, sources []config.Source) ([]domain.SourceTally, domain.Tally) {
	results := make([]domain.SourceTally, 0, len(sources))
	total := domain.Tally{}

	for i := range sources {
		src := &sources[i]

		tally := o.runSource(ctx, src)
		results = append(results, domain.SourceTally{Source: src.Name, Tally: tally})
		total.Add(tally)
	}

	o.log.Info("run complete",
		"sources", len(sources),
		"processed", total.Processed,
		"attempted", total.Attempted,
	)

	return results, total
}

// runSource processes one source end to end. Disabled sources and sources
// whose discovery fails yield an empty tally without dispatching any work.
func (o *Orchestrator) runSource(ctx context.Context, src *config.Source) domain.Tally {
	if !src.Enabled {
		o.log.Debug("source disabled, skipping", "source", src.Name)
		return domain.Tally{}
	}

	caps, ok := o.registry.Lookup(src.Name)
	if !ok {
		o.log.Error("no capabilities registered for source", "source", src.Name)
		return domain.Tally{}
	}

	urls, err := caps.Scraper.DiscoverURLs(ctx, o.maxArticles)
	if err != nil {
		o.log.Warn("URL discovery failed, skipping source",
			"source", src.Name,
			"error", err,
		)
		return domain.Tally{}
	}

	o.log.Info("processing source", "source", src.Name, "urls", len(urls))

	start := time.Now()
	tally := o.pipeline.Run(ctx, src.Name, analyzer.New(src.JunkPatterns), caps.Parser, urls)

	o.log.Info("source complete",
		"source", src.Name,
		"processed", tally.Processed,
		"attempted", tally.Attempted,
		"duration", time.Since(start),
	)

	return tally
}
