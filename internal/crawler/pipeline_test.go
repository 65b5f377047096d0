package crawler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonesrussell/lexicrawl/internal/analyzer"
	"github.com/jonesrussell/lexicrawl/internal/crawler"
	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
	"github.com/jonesrussell/lexicrawl/internal/parser"
)

// articleBody is long enough and alphabetic enough to pass validation.
const articleBody = "Le gouvernement français annonce des réformes importantes " +
	"pour le système éducatif national. Les enseignants demandent davantage " +
	"de moyens pour les établissements scolaires."

// fakeParser serves canned articles and can fail or hang on demand.
type fakeParser struct {
	mu      sync.Mutex
	calls   []string
	failURL string
	body    string
	hang    bool
}

func (f *fakeParser) FetchAndParse(ctx context.Context, articleURL string) (*domain.Article, error) {
	f.mu.Lock()
	f.calls = append(f.calls, articleURL)
	f.mu.Unlock()

	if f.hang {
		<-ctx.Done()
		return nil, &parser.FetchError{URL: articleURL, Err: ctx.Err()}
	}
	if articleURL == f.failURL {
		return nil, &parser.FetchError{URL: articleURL, Err: errors.New("connection reset")}
	}

	body := f.body
	if body == "" {
		body = articleBody
	}
	return &domain.Article{
		Title:     "Titre de test",
		Body:      body,
		Source:    "test-source",
		URL:       articleURL,
		ScrapedAt: time.Now(),
	}, nil
}

func (f *fakeParser) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeSink records appended articles and can be made to fail.
type fakeSink struct {
	mu      sync.Mutex
	appends int
	err     error
}

func (f *fakeSink) AppendArticle(_ *domain.Article, _ string, _ map[string]int, _ map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.appends++
	return nil
}

func (f *fakeSink) appended() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appends
}

func newTestPipeline(sink crawler.ArticleSink, cfg crawler.PipelineConfig) *crawler.Pipeline {
	return crawler.NewPipeline(sink, logger.NewNoOp(), cfg)
}

func TestPipelineRun_FailureIsolation(t *testing.T) {
	t.Parallel()

	par := &fakeParser{failURL: "https://example.com/b"}
	sink := &fakeSink{}
	p := newTestPipeline(sink, crawler.PipelineConfig{TopWords: 10})

	urls := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}
	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par, urls)

	if tally.Attempted != 3 {
		t.Errorf("attempted = %d, want 3", tally.Attempted)
	}
	if tally.Processed != 2 {
		t.Errorf("processed = %d, want 2", tally.Processed)
	}
	if got := sink.appended(); got != 2 {
		t.Errorf("sink appends = %d, want 2", got)
	}
}

func TestPipelineRun_EmptyURLs(t *testing.T) {
	t.Parallel()

	par := &fakeParser{}
	sink := &fakeSink{}
	p := newTestPipeline(sink, crawler.PipelineConfig{TopWords: 10})

	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par, nil)

	if tally != (domain.Tally{}) {
		t.Errorf("tally = %+v, want zero", tally)
	}
	if par.callCount() != 0 {
		t.Error("parser should not be called for an empty URL list")
	}
}

func TestPipelineRun_Timeout(t *testing.T) {
	t.Parallel()

	par := &fakeParser{hang: true}
	sink := &fakeSink{}
	p := newTestPipeline(sink, crawler.PipelineConfig{
		ArticleTimeout: 20 * time.Millisecond,
		TopWords:       10,
	})

	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par,
		[]string{"https://example.com/slow"})

	if tally.Attempted != 1 || tally.Processed != 0 {
		t.Errorf("tally = %+v, want attempted=1 processed=0", tally)
	}
}

func TestPipelineRun_ValidationFailure(t *testing.T) {
	t.Parallel()

	par := &fakeParser{body: "trop court"}
	sink := &fakeSink{}
	p := newTestPipeline(sink, crawler.PipelineConfig{TopWords: 10})

	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par,
		[]string{"https://example.com/thin"})

	if tally.Processed != 0 {
		t.Errorf("processed = %d, want 0", tally.Processed)
	}
	if sink.appended() != 0 {
		t.Error("thin article must not reach the sink")
	}
}

func TestPipelineRun_SinkFailure(t *testing.T) {
	t.Parallel()

	par := &fakeParser{}
	sink := &fakeSink{err: errors.New("disk full")}
	p := newTestPipeline(sink, crawler.PipelineConfig{TopWords: 10})

	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par,
		[]string{"https://example.com/a"})

	if tally.Attempted != 1 || tally.Processed != 0 {
		t.Errorf("tally = %+v, want attempted=1 processed=0", tally)
	}
}

// boundedParser tracks the maximum number of concurrent FetchAndParse calls.
type boundedParser struct {
	mu       sync.Mutex
	inFlight int
	peak     int
}

func (b *boundedParser) FetchAndParse(_ context.Context, articleURL string) (*domain.Article, error) {
	b.mu.Lock()
	b.inFlight++
	if b.inFlight > b.peak {
		b.peak = b.inFlight
	}
	b.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	b.mu.Lock()
	b.inFlight--
	b.mu.Unlock()

	return &domain.Article{
		Body:      articleBody,
		Source:    "test-source",
		URL:       articleURL,
		ScrapedAt: time.Now(),
	}, nil
}

func TestPipelineRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	par := &boundedParser{}
	sink := &fakeSink{}
	p := newTestPipeline(sink, crawler.PipelineConfig{TopWords: 10})

	urls := make([]string, 12)
	for i := range urls {
		urls[i] = "https://example.com/article-" + string(rune('a'+i))
	}
	tally := p.Run(context.Background(), "test-source", analyzer.New(nil), par, urls)

	if tally.Processed != 12 {
		t.Errorf("processed = %d, want 12", tally.Processed)
	}

	par.mu.Lock()
	peak := par.peak
	par.mu.Unlock()
	if peak > 3 {
		t.Errorf("peak concurrency = %d, want at most 3", peak)
	}
}
