package output_test

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonesrussell/lexicrawl/internal/domain"
	"github.com/jonesrussell/lexicrawl/internal/logger"
	"github.com/jonesrussell/lexicrawl/internal/output"
)

// fixedClock pins the sink to one calendar day so tests hit a single file.
func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
}

func newTestSink(t *testing.T) *output.Sink {
	t.Helper()

	sink, err := output.NewSink(t.TempDir(), logger.NewNoOp(), output.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	return sink
}

func testArticle() *domain.Article {
	return &domain.Article{
		Title:         "Réformes annoncées",
		Body:          "unused here",
		PublishedDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Source:        "lemonde",
		URL:           "https://example.com/article-1",
		ScrapedAt:     fixedClock(),
	}
}

func readRecords(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestAppendArticle_ReadBack(t *testing.T) {
	t.Parallel()

	sink := newTestSink(t)
	article := testArticle()

	freqs := map[string]int{"gouvernement": 3, "reformes": 2, "budget": 1}
	contexts := map[string]string{"reformes": "Les réformes arrivent"}

	if err := sink.AppendArticle(article, article.URL, freqs, contexts); err != nil {
		t.Fatalf("AppendArticle: %v", err)
	}

	records := readRecords(t, sink.PathForToday())
	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}

	wantHeader := []string{"word", "context", "source", "article_date", "scraped_date", "title", "frequency"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// Rows are sorted by descending frequency.
	if records[1][0] != "gouvernement" || records[1][6] != "3" {
		t.Errorf("first row = %v, want gouvernement/3", records[1])
	}
	if records[2][0] != "reformes" || records[2][1] != "Les réformes arrivent" {
		t.Errorf("second row = %v, want reformes with context", records[2])
	}
	if records[3][0] != "budget" || records[3][1] != "" {
		t.Errorf("third row = %v, want budget with empty context", records[3])
	}

	if records[1][2] != "lemonde" || records[1][3] != "2026-03-13" {
		t.Errorf("source/article_date = %q/%q", records[1][2], records[1][3])
	}
}

func TestAppendArticle_HeaderWrittenOnce(t *testing.T) {
	t.Parallel()

	sink := newTestSink(t)
	article := testArticle()

	if err := sink.AppendArticle(article, article.URL, map[string]int{"premier": 1}, nil); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := sink.AppendArticle(article, article.URL, map[string]int{"second": 1}, nil); err != nil {
		t.Fatalf("second append: %v", err)
	}

	records := readRecords(t, sink.PathForToday())
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	for i, rec := range records[1:] {
		if rec[0] == "word" {
			t.Errorf("row %d repeats the header", i+1)
		}
	}
}

func TestAppendArticle_FieldCaps(t *testing.T) {
	t.Parallel()

	sink := newTestSink(t)
	article := testArticle()

	longWord := strings.Repeat("a", 150)
	longContext := strings.Repeat("b", 600)

	err := sink.AppendArticle(article, article.URL,
		map[string]int{longWord: 1},
		map[string]string{longWord: longContext},
	)
	if err != nil {
		t.Fatalf("AppendArticle: %v", err)
	}

	records := readRecords(t, sink.PathForToday())
	if got := len(records[1][0]); got != 100 {
		t.Errorf("word length = %d, want 100", got)
	}
	if got := len(records[1][1]); got != 500 {
		t.Errorf("context length = %d, want 500", got)
	}
}

func TestAppendArticle_EmptyBatch(t *testing.T) {
	t.Parallel()

	sink := newTestSink(t)

	if err := sink.AppendArticle(testArticle(), "https://example.com/x", nil, nil); err != nil {
		t.Fatalf("AppendArticle: %v", err)
	}
	if _, err := os.Stat(sink.PathForToday()); !os.IsNotExist(err) {
		t.Error("empty batch should not create the daily file")
	}
}

func TestAppendArticle_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	sink := newTestSink(t)

	const (
		writers      = 8
		wordsPerItem = 5
	)

	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			article := testArticle()
			article.URL = fmt.Sprintf("https://example.com/article-%d", i)

			freqs := make(map[string]int, wordsPerItem)
			for j := range wordsPerItem {
				freqs[fmt.Sprintf("mot%d-%d", i, j)] = j + 1
			}

			errs <- sink.AppendArticle(article, article.URL, freqs, nil)
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent append: %v", err)
		}
	}

	records := readRecords(t, sink.PathForToday())
	if got, want := len(records), 1+writers*wordsPerItem; got != want {
		t.Fatalf("got %d records, want %d", got, want)
	}
	for i, rec := range records {
		if len(rec) != 7 {
			t.Errorf("record %d has %d fields, want 7 (torn row?)", i, len(rec))
		}
	}
}
