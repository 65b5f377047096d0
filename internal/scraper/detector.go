package scraper

import (
	"net/url"
	"path"
	"strings"
)

// minSlugWordCount is the minimum number of hyphen-separated words in a URL
// slug to consider it article-like when no patterns are configured.
const minSlugWordCount = 4

// nonArticleSegments are URL path segments that indicate non-article pages.
var nonArticleSegments = map[string]bool{
	"login":      true,
	"signin":     true,
	"abonnement": true,
	"newsletter": true,
	"search":     true,
	"recherche":  true,
	"contact":    true,
	"about":      true,
	"mentions":   true,
	"cgu":        true,
	"tag":        true,
	"category":   true,
	"categorie":  true,
	"author":     true,
	"auteur":     true,
	"page":       true,
	"feed":       true,
	"rss":        true,
	"sitemap":    true,
	"video":      true,
	"videos":     true,
	"podcast":    true,
	"podcasts":   true,
}

// nonArticleExtensions are file extensions that indicate non-article resources.
var nonArticleExtensions = map[string]bool{
	".pdf":  true,
	".xml":  true,
	".json": true,
	".css":  true,
	".js":   true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".ico":  true,
	".zip":  true,
	".mp3":  true,
	".mp4":  true,
}

// isArticleURL reports whether link looks like an article page on the same
// site as the homepage. With patterns configured, a link qualifies when its
// path contains any pattern; otherwise a hyphenated-slug heuristic applies.
func (s *HomepageScraper) isArticleURL(home *url.URL, link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host != strings.TrimPrefix(home.Hostname(), "www.") {
		return false
	}

	cleanPath := strings.ToLower(strings.Trim(u.Path, "/"))
	if cleanPath == "" {
		return false
	}

	if nonArticleExtensions[strings.ToLower(path.Ext(cleanPath))] {
		return false
	}
	for _, segment := range strings.Split(cleanPath, "/") {
		if nonArticleSegments[segment] {
			return false
		}
	}

	if len(s.cfg.ArticleURLPatterns) > 0 {
		for _, pattern := range s.cfg.ArticleURLPatterns {
			if pattern != "" && strings.Contains(u.Path, pattern) {
				return true
			}
		}
		return false
	}

	// No patterns: treat long hyphenated slugs as articles.
	slug := path.Base(cleanPath)
	slug = strings.TrimSuffix(slug, path.Ext(slug))
	return len(strings.Split(slug, "-")) >= minSlugWordCount
}
