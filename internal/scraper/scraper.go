// Package scraper discovers article URLs on configured news homepages.
// Discovery runs live against the site or from a cached URL list when the
// application is in offline mode.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// Interface is the URL-discovery capability for one source.
type Interface interface {
	// DiscoverURLs returns up to maxArticles article URLs for the source.
	DiscoverURLs(ctx context.Context, maxArticles int) ([]string, error)
}

// Config holds the settings for one source's homepage scraper.
type Config struct {
	// Name is the source name, used in logs and errors
	Name string
	// URL is the homepage to discover article links on
	URL string
	// ArticleURLPatterns are path substrings that mark a link as an article.
	// When empty, a slug heuristic is used instead.
	ArticleURLPatterns []string
	// UserAgent is sent on discovery requests
	UserAgent string
	// MaxBodySize caps the homepage response body in bytes
	MaxBodySize int
	// Timeout bounds the discovery request
	Timeout time.Duration
}

// HomepageScraper discovers article URLs by visiting the source homepage
// with a depth-1 collector and filtering anchor links.
type HomepageScraper struct {
	cfg Config
	log logger.Interface
}

// Ensure HomepageScraper implements Interface
var _ Interface = (*HomepageScraper)(nil)

// NewHomepageScraper creates a live scraper for the given source.
func NewHomepageScraper(cfg Config, log logger.Interface) *HomepageScraper {
	return &HomepageScraper{
		cfg: cfg,
		log: log.WithComponent("scraper").With("source", cfg.Name),
	}
}

// DiscoverURLs visits the homepage and collects article links. Fails with a
// *DiscoveryError when the homepage cannot be fetched or yields no article
// URLs.
func (s *HomepageScraper) DiscoverURLs(ctx context.Context, maxArticles int) ([]string, error) {
	home, err := url.Parse(s.cfg.URL)
	if err != nil {
		return nil, &DiscoveryError{Source: s.cfg.Name, Err: fmt.Errorf("parse homepage URL: %w", err)}
	}

	opts := []colly.CollectorOption{
		colly.MaxDepth(1),
		colly.AllowedDomains(allowedHosts(home.Hostname())...),
		colly.StdlibContext(ctx),
	}
	if s.cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(s.cfg.UserAgent))
	}
	if s.cfg.MaxBodySize > 0 {
		opts = append(opts, colly.MaxBodySize(s.cfg.MaxBodySize))
	}

	collector := colly.NewCollector(opts...)
	if s.cfg.Timeout > 0 {
		collector.SetRequestTimeout(s.cfg.Timeout)
	}

	seen := make(map[string]struct{})
	var urls []string

	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" {
			return
		}
		if !s.isArticleURL(home, link) {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		urls = append(urls, link)
	})

	if visitErr := collector.Visit(s.cfg.URL); visitErr != nil {
		return nil, &DiscoveryError{Source: s.cfg.Name, Err: fmt.Errorf("visit homepage: %w", visitErr)}
	}
	collector.Wait()

	if len(urls) == 0 {
		return nil, &DiscoveryError{Source: s.cfg.Name, Err: ErrNoArticleURLs}
	}

	if maxArticles > 0 && len(urls) > maxArticles {
		urls = urls[:maxArticles]
	}

	s.log.Debug("discovered article URLs", "count", len(urls))

	return urls, nil
}

// allowedHosts returns the homepage host plus its www/apex counterpart.
func allowedHosts(host string) []string {
	if strings.HasPrefix(host, "www.") {
		return []string{host, strings.TrimPrefix(host, "www.")}
	}
	return []string{host, "www." + host}
}
