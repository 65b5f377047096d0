// Package parser fetches article pages and extracts their content using
// per-source CSS selectors. Parsing can run live over HTTP or from cached
// HTML when the application is in offline mode.
package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// defaultMaxBodySize caps article response bodies when unconfigured.
const defaultMaxBodySize = 10 * 1024 * 1024 // 10 MB

// Interface is the fetch-and-parse capability for one source.
type Interface interface {
	// FetchAndParse retrieves the page at articleURL and extracts an Article.
	FetchAndParse(ctx context.Context, articleURL string) (*domain.Article, error)
}

// Selectors are the CSS selectors used to extract article content.
type Selectors struct {
	// Title selects the article headline; falls back to the page <title>
	Title string
	// Body selects the article text container
	Body string
	// Date selects the publication date element
	Date string
	// Exclude lists sub-selectors removed from the body before text extraction
	Exclude []string
}

// Config holds the settings for one source's article parser.
type Config struct {
	// Source is the source name stamped onto extracted articles
	Source string
	// Selectors drive content extraction
	Selectors Selectors
	// UserAgent is sent on fetch requests
	UserAgent string
	// MaxBodySize caps the response body in bytes
	MaxBodySize int64
	// Timeout bounds each fetch
	Timeout time.Duration
}

// ArticleParser fetches article pages over HTTP and extracts content with
// goquery.
type ArticleParser struct {
	cfg    Config
	client *http.Client
	log    logger.Interface
	now    func() time.Time
}

// Ensure ArticleParser implements Interface
var _ Interface = (*ArticleParser)(nil)

// NewArticleParser creates a live parser for the given source.
func NewArticleParser(cfg Config, log logger.Interface) *ArticleParser {
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaultMaxBodySize
	}

	return &ArticleParser{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.WithComponent("parser").With("source", cfg.Source),
		now:    time.Now,
	}
}

// FetchAndParse retrieves the article page and extracts its content.
// Transport and status failures surface as *FetchError; pages with no
// extractable content surface as *ParseError.
func (p *ArticleParser) FetchAndParse(ctx context.Context, articleURL string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{URL: articleURL, Err: fmt.Errorf("create request: %w", err)}
	}
	if p.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: articleURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL: articleURL,
			Err: fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, p.cfg.MaxBodySize))
	if err != nil {
		return nil, &ParseError{URL: articleURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	article, err := extractArticle(doc, p.cfg.Source, articleURL, p.cfg.Selectors, p.now())
	if err != nil {
		return nil, &ParseError{URL: articleURL, Err: err}
	}

	return article, nil
}
