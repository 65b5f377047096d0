package scraper

import "errors"

// ErrNoArticleURLs is returned when discovery finds no article links.
var ErrNoArticleURLs = errors.New("no article URLs discovered")

// DiscoveryError reports that URL discovery failed for a source. The
// orchestrator skips the source and continues with the rest.
type DiscoveryError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	return "discovery failed for source " + e.Source + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
