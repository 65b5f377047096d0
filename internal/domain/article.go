// Package domain provides domain models used across the application.
package domain

import (
	"strings"
	"time"
)

// Article represents one fetched and parsed news page.
type Article struct {
	// Title of the article
	Title string `json:"title"`
	// Body is the extracted article text
	Body string `json:"body"`
	// PublishedDate is the date the article was published, if detected
	PublishedDate time.Time `json:"published_date"`
	// Source is the name of the configured source the article came from
	Source string `json:"source"`
	// URL the article was fetched from
	URL string `json:"url"`
	// ScrapedAt is the time the article was fetched
	ScrapedAt time.Time `json:"scraped_at"`
}

// PublishedISO returns the published date as an ISO date string,
// or empty if the date was not detected.
func (a *Article) PublishedISO() string {
	if a.PublishedDate.IsZero() {
		return ""
	}
	return a.PublishedDate.Format("2006-01-02")
}

// CleanTitle returns the title with surrounding whitespace removed.
func (a *Article) CleanTitle() string {
	return strings.TrimSpace(a.Title)
}
