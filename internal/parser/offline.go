package parser

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// cachedFileHashLength is the number of hex characters of the URL hash used
// in cached HTML file names.
const cachedFileHashLength = 16

// OfflineParser extracts articles from HTML cached on disk instead of
// fetching the live page. Cached files live under <cacheDir>/<source>/ and
// are named by a hash of the article URL.
type OfflineParser struct {
	cfg      Config
	cacheDir string
	log      logger.Interface
	now      func() time.Time
}

// Ensure OfflineParser implements Interface
var _ Interface = (*OfflineParser)(nil)

// NewOfflineParser creates a parser reading cached HTML for the source from
// cacheDir.
func NewOfflineParser(cfg Config, cacheDir string, log logger.Interface) *OfflineParser {
	return &OfflineParser{
		cfg:      cfg,
		cacheDir: cacheDir,
		log:      log.WithComponent("parser").With("source", cfg.Source, "offline", true),
		now:      time.Now,
	}
}

// CachedPath returns the cached HTML file for the given article URL.
func (p *OfflineParser) CachedPath(articleURL string) string {
	sum := sha256.Sum256([]byte(articleURL))
	name := hex.EncodeToString(sum[:])[:cachedFileHashLength] + ".html"
	return filepath.Join(p.cacheDir, p.cfg.Source, name)
}

// FetchAndParse reads the cached HTML for articleURL and extracts its
// content. A missing cache file surfaces as *FetchError, mirroring a live
// fetch failure.
func (p *OfflineParser) FetchAndParse(ctx context.Context, articleURL string) (*domain.Article, error) {
	path := p.CachedPath(articleURL)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{URL: articleURL, Err: fmt.Errorf("read cached page %s: %w", path, err)}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &ParseError{URL: articleURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	article, err := extractArticle(doc, p.cfg.Source, articleURL, p.cfg.Selectors, p.now())
	if err != nil {
		return nil, &ParseError{URL: articleURL, Err: err}
	}

	return article, nil
}
