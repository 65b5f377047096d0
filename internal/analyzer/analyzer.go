// Package analyzer provides the French text-analysis engine: cleaning,
// tokenization, word-frequency counting, and context-sentence extraction.
// All operations are pure with respect to the Analyzer and safe for
// concurrent use.
package analyzer

import (
	"iter"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// minTokenLength is the minimum rune count for a token to survive filtering
	minTokenLength = 4
	// maxDigitFraction is the maximum fraction of digit runes allowed in a token
	maxDigitFraction = 0.6
)

// Analyzer analyzes French article text. The zero value is usable; junk
// patterns are site-specific parsing artifacts to drop during tokenization.
type Analyzer struct {
	junk map[string]struct{}
}

// New creates an analyzer with the given junk patterns. Patterns are
// normalized the same way tokens are, so matching is accent- and
// case-insensitive.
func New(junkPatterns []string) *Analyzer {
	a := &Analyzer{junk: make(map[string]struct{}, len(junkPatterns))}
	for _, p := range junkPatterns {
		for _, tok := range strings.Fields(a.Clean(p)) {
			a.junk[tok] = struct{}{}
		}
	}
	return a
}

// fold strips combining marks after Unicode decomposition, turning accented
// characters into their base form (é -> e, à -> a).
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Clean normalizes text for tokenization: accent folding, lowercasing,
// removal of characters outside letters/digits/whitespace/apostrophe/hyphen,
// and whitespace collapsing. Clean is idempotent.
func (a *Analyzer) Clean(text string) string {
	folded := strings.ToLower(fold(text))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens returns a restartable sequence of tokens from text. Order is
// preserved and duplicates are retained; frequency counting happens
// downstream. Tokens that fail the length, digit, stopword, or junk
// filters are skipped.
func (a *Analyzer) Tokens(text string) iter.Seq[string] {
	fields := strings.Fields(a.Clean(text))

	return func(yield func(string) bool) {
		for _, tok := range fields {
			if !a.keep(tok) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize collects the token sequence into a slice.
func (a *Analyzer) Tokenize(text string) []string {
	return slices.Collect(a.Tokens(text))
}

// keep reports whether a cleaned token survives the tokenization filters.
func (a *Analyzer) keep(tok string) bool {
	runeCount := 0
	digits := 0
	letters := 0
	for _, r := range tok {
		runeCount++
		if unicode.IsDigit(r) {
			digits++
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}

	if runeCount < minTokenLength {
		return false
	}
	// No letters covers both purely numeric tokens and punctuation-only ones.
	if letters == 0 {
		return false
	}
	if float64(digits)/float64(runeCount) > maxDigitFraction {
		return false
	}
	if _, ok := stopwords[tok]; ok {
		return false
	}
	if _, ok := a.junk[tok]; ok {
		return false
	}

	return true
}
