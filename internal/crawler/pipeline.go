package crawler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonesrussell/lexicrawl/internal/analyzer"
	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
	"github.com/jonesrussell/lexicrawl/internal/parser"
)

// maxWorkersPerSource bounds concurrent article processing within one
// source. Kept low to stay polite to the target site.
const maxWorkersPerSource = 3

// ArticleSink persists one article's analysis results.
type ArticleSink interface {
	AppendArticle(article *domain.Article, url string, freqs map[string]int, contexts map[string]string) error
}

// PipelineConfig holds per-article processing settings.
type PipelineConfig struct {
	// ArticleTimeout bounds one article's fetch+parse+analyze+persist
	ArticleTimeout time.Duration
	// TopWords is how many top-frequency words get a context sentence
	TopWords int
}

// Pipeline processes a source's article URLs under bounded concurrency.
// Each article runs as an independent unit of work; one article's failure
// never aborts the source or its siblings.
type Pipeline struct {
	sink ArticleSink
	log  logger.Interface
	cfg  PipelineConfig
}

// NewPipeline creates an article processing pipeline.
func NewPipeline(sink ArticleSink, log logger.Interface, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		sink: sink,
		log:  log.WithComponent("pipeline"),
		cfg:  cfg,
	}
}

// itemResult is the outcome of one article work item.
type itemResult struct {
	url string
	err error
}

// Run processes all URLs for one source and returns its tally. At most
// min(len(urls), 3) articles are in flight at a time; ordering among
// articles is not guaranteed.
func (p *Pipeline) Run(
	ctx context.Context,
	source string,
	an *analyzer.Analyzer,
	par parser.Interface,
	urls []string,
) domain.Tally {
	if len(urls) == 0 {
		return domain.Tally{}
	}

	workers := min(len(urls), maxWorkersPerSource)
	sem := make(chan struct{}, workers)
	results := make(chan itemResult, len(urls))

	var wg sync.WaitGroup
	for _, articleURL := range urls {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results <- itemResult{
				url: articleURL,
				err: p.processArticle(ctx, source, an, par, articleURL),
			}
		}()
	}

	wg.Wait()
	close(results)

	tally := domain.Tally{}
	for res := range results {
		tally.Attempted++
		if res.err == nil {
			tally.Processed++
			continue
		}
		p.logItemFailure(source, res)
	}

	return tally
}

// processArticle runs one article through fetch, validation, analysis, and
// persistence. A per-article timeout converts a hung fetch into a recorded
// failure for this item only.
func (p *Pipeline) processArticle(
	ctx context.Context,
	source string,
	an *analyzer.Analyzer,
	par parser.Interface,
	articleURL string,
) error {
	if p.cfg.ArticleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.ArticleTimeout)
		defer cancel()
	}

	article, err := par.FetchAndParse(ctx, articleURL)
	if err != nil {
		return err
	}

	text, err := an.Validate(article.Body)
	if err != nil {
		return err
	}

	freqs := an.CountFrequency(text)

	top, err := an.TopWords(text, p.cfg.TopWords)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) {
			// Nothing survived filtering; zero rows is a valid outcome.
			p.log.Debug("article yielded no tokens", "source", source, "url", articleURL)
			return nil
		}
		return err
	}

	words := make([]string, len(top))
	for i, wc := range top {
		words[i] = wc.Word
	}
	contexts := an.ExtractContexts(article.Body, words)

	if err := p.sink.AppendArticle(article, articleURL, freqs, contexts); err != nil {
		return fmt.Errorf("append article rows: %w", err)
	}

	return nil
}

// logItemFailure logs a failed work item at a level matching its severity.
// Validation failures are expected for thin or junk pages; fetch and parse
// failures are routine; anything else (output I/O included) is not.
func (p *Pipeline) logItemFailure(source string, res itemResult) {
	var (
		vErr     *analyzer.ValidationError
		fetchErr *parser.FetchError
		parseErr *parser.ParseError
	)
	switch {
	case errors.As(res.err, &vErr):
		p.log.Debug("article skipped by validation",
			"source", source,
			"url", res.url,
			"reason", vErr.Reason,
		)
	case errors.As(res.err, &fetchErr), errors.As(res.err, &parseErr):
		p.log.Warn("article skipped",
			"source", source,
			"url", res.url,
			"error", res.err,
		)
	default:
		p.log.Error("article processing failed",
			"source", source,
			"url", res.url,
			"error", res.err,
		)
	}
}
