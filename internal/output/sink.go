// Package output persists word-frequency rows to append-only daily CSV
// files. All sinks for the same day resolve to the same file, so appends
// are serialized through a single package-level lock.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
)

const (
	// maxWordLength caps the word column in runes
	maxWordLength = 100
	// maxContextLength caps the context column in runes
	maxContextLength = 500
	// filePrefix is the daily file name prefix
	filePrefix = "vocab_"
	// fileDateLayout is the date portion of the daily file name
	fileDateLayout = "2006-01-02"
	// scrapedDateLayout formats the scraped_date column
	scrapedDateLayout = "2006-01-02 15:04:05"
	// outputFileMode is the permission for created output files
	outputFileMode = 0o644
)

// header is written once per newly created daily file.
var header = []string{"word", "context", "source", "article_date", "scraped_date", "title", "frequency"}

// destMu serializes appends across every Sink instance. One full article
// batch is written per critical section; rows from two articles never
// interleave.
var destMu sync.Mutex

// Sink appends article word-frequency batches to the destination for today.
type Sink struct {
	dir string
	log logger.Interface
	now func() time.Time
}

// Option configures a Sink.
type Option func(*Sink)

// WithClock overrides the sink's clock. Used by tests to pin the daily file.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// NewSink creates a sink writing under dir, creating the directory if
// needed. An unusable directory is a startup failure.
func NewSink(dir string, log logger.Interface, opts ...Option) (*Sink, error) {
	if dir == "" {
		return nil, errors.New("output directory must be specified")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	s := &Sink{
		dir: dir,
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// PathForToday returns the destination file for the current calendar day.
func (s *Sink) PathForToday() string {
	return filepath.Join(s.dir, filePrefix+s.now().Format(fileDateLayout)+".csv")
}

// AppendArticle writes one row per frequency entry for the article, taking
// the context sentence from contexts when present. The whole batch is
// appended under the shared lock; the header is written only when the daily
// file is newly created. Duplicate (word, url) pairs within the batch are
// suppressed.
func (s *Sink) AppendArticle(
	article *domain.Article,
	url string,
	freqs map[string]int,
	contexts map[string]string,
) error {
	if len(freqs) == 0 {
		return nil
	}

	rows := s.buildRows(article, url, freqs, contexts)

	destMu.Lock()
	defer destMu.Unlock()

	path := s.PathForToday()

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("open output file %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if writeErr := w.Write(header); writeErr != nil {
			f.Close()
			return fmt.Errorf("write header to %s: %w", path, writeErr)
		}
	}

	for _, row := range rows {
		record := []string{
			row.Word,
			row.Context,
			row.Source,
			row.ArticleDate,
			row.ScrapedDate,
			row.Title,
			strconv.Itoa(row.Frequency),
		}
		if writeErr := w.Write(record); writeErr != nil {
			f.Close()
			return fmt.Errorf("write row to %s: %w", path, writeErr)
		}
	}

	w.Flush()
	if flushErr := w.Error(); flushErr != nil {
		f.Close()
		return fmt.Errorf("flush rows to %s: %w", path, flushErr)
	}
	if syncErr := f.Sync(); syncErr != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", path, syncErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	s.log.Debug("appended article rows",
		"url", url,
		"rows", len(rows),
		"file", path,
	)

	return nil
}

// buildRows flattens the frequency map into output rows, sorted by
// descending frequency then word so file contents are deterministic.
func (s *Sink) buildRows(
	article *domain.Article,
	url string,
	freqs map[string]int,
	contexts map[string]string,
) []domain.OutputRow {
	scraped := article.ScrapedAt
	if scraped.IsZero() {
		scraped = s.now()
	}

	seen := make(map[string]struct{}, len(freqs))
	rows := make([]domain.OutputRow, 0, len(freqs))
	for word, count := range freqs {
		if count <= 0 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		rows = append(rows, domain.OutputRow{
			Word:        truncate(word, maxWordLength),
			Context:     truncate(contexts[word], maxContextLength),
			Source:      article.Source,
			ArticleDate: article.PublishedISO(),
			ScrapedDate: scraped.Format(scrapedDateLayout),
			Title:       article.CleanTitle(),
			Frequency:   count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Frequency != rows[j].Frequency {
			return rows[i].Frequency > rows[j].Frequency
		}
		return rows[i].Word < rows[j].Word
	})

	return rows
}

// truncate caps s at max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
