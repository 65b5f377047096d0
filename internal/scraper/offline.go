package scraper

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/lexicrawl/internal/logger"
)

// urlListSuffix is appended to the source name to form the cached URL list
// file name.
const urlListSuffix = "_urls.txt"

// OfflineScraper reads a pre-cached URL list from disk instead of visiting
// the live site. Used when the application runs in offline mode.
type OfflineScraper struct {
	source   string
	cacheDir string
	log      logger.Interface
}

// Ensure OfflineScraper implements Interface
var _ Interface = (*OfflineScraper)(nil)

// NewOfflineScraper creates a scraper reading cached URLs for the source
// from cacheDir.
func NewOfflineScraper(source, cacheDir string, log logger.Interface) *OfflineScraper {
	return &OfflineScraper{
		source:   source,
		cacheDir: cacheDir,
		log:      log.WithComponent("scraper").With("source", source, "offline", true),
	}
}

// URLListPath returns the cached URL list file for the source.
func (s *OfflineScraper) URLListPath() string {
	return filepath.Join(s.cacheDir, s.source+urlListSuffix)
}

// DiscoverURLs reads the cached URL list, one URL per line. Blank lines and
// lines starting with '#' are skipped.
func (s *OfflineScraper) DiscoverURLs(ctx context.Context, maxArticles int) ([]string, error) {
	path := s.URLListPath()

	f, err := os.Open(path)
	if err != nil {
		return nil, &DiscoveryError{Source: s.source, Err: fmt.Errorf("open cached URL list %s: %w", path, err)}
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
		if maxArticles > 0 && len(urls) == maxArticles {
			break
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, &DiscoveryError{Source: s.source, Err: fmt.Errorf("read cached URL list %s: %w", path, scanErr)}
	}

	if len(urls) == 0 {
		return nil, &DiscoveryError{Source: s.source, Err: ErrNoArticleURLs}
	}

	s.log.Debug("loaded cached article URLs", "count", len(urls))

	return urls, nil
}
