// Package crawler orchestrates the per-source processing pipeline: URL
// discovery, bounded-concurrency article processing, text analysis, and
// persistence to the daily output sink.
package crawler

import (
	"fmt"
	"sync"

	"github.com/jonesrussell/lexicrawl/internal/parser"
	"github.com/jonesrussell/lexicrawl/internal/scraper"
)

// Capabilities is the (Scraper, Parser) pair registered for one source.
type Capabilities struct {
	// Scraper discovers article URLs for the source
	Scraper scraper.Interface
	// Parser fetches and parses individual articles
	Parser parser.Interface
}

// Registry maps source names to their capabilities. Populated by explicit
// registration at startup; safe for concurrent lookup.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]Capabilities
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{caps: make(map[string]Capabilities)}
}

// Register binds capabilities to a source name. Registering the same name
// twice is a wiring bug and fails.
func (r *Registry) Register(name string, caps Capabilities) error {
	if name == "" {
		return fmt.Errorf("source name must be specified")
	}
	if caps.Scraper == nil || caps.Parser == nil {
		return fmt.Errorf("source %s: scraper and parser must both be set", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.caps[name]; dup {
		return fmt.Errorf("source %s already registered", name)
	}
	r.caps[name] = caps

	return nil
}

// Lookup returns the capabilities for a source name.
func (r *Registry) Lookup(name string) (Capabilities, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, ok := r.caps[name]
	return caps, ok
}
