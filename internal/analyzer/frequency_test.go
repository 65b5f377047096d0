package analyzer_test

import (
	"errors"
	"testing"

	"github.com/jonesrussell/lexicrawl/internal/analyzer"
)

func TestCountFrequency(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	// "mot" is 3 runes and falls to the length filter, so only "test" counts.
	got := a.CountFrequency("mot mot test")
	if len(got) != 1 || got["test"] != 1 {
		t.Errorf("CountFrequency = %v, want map[test:1]", got)
	}
}

func TestCountFrequency_Conservation(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	texts := []string{
		"Le gouvernement français annonce des réformes importantes.",
		"budget budget budget croissance",
		"le la les",
		"",
	}

	for _, text := range texts {
		freqs := a.CountFrequency(text)
		sum := 0
		for _, c := range freqs {
			sum += c
		}
		if tokens := a.Tokenize(text); sum != len(tokens) {
			t.Errorf("sum of counts %d != token count %d for %q", sum, len(tokens), text)
		}
	}
}

func TestTopWords_Ordering(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	got, err := a.TopWords("alpha beta beta gamma alpha delta", 10)
	if err != nil {
		t.Fatalf("TopWords: %v", err)
	}

	want := []analyzer.WordCount{
		{Word: "alpha", Count: 2},
		{Word: "beta", Count: 2},
		{Word: "gamma", Count: 1},
		{Word: "delta", Count: 1},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopWords_Limit(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	got, err := a.TopWords("alpha beta gamma delta epsilon", 2)
	if err != nil {
		t.Fatalf("TopWords: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d entries, want 2", len(got))
	}
}

func TestTopWords_EmptyInput(t *testing.T) {
	t.Parallel()

	a := analyzer.New(nil)

	for _, text := range []string{"", "le la et", "123 456"} {
		_, err := a.TopWords(text, 10)
		if !errors.Is(err, analyzer.ErrEmptyInput) {
			t.Errorf("TopWords(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}
