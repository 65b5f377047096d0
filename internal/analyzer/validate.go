package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// minTextLength is the minimum rune count for article text to be analyzable
	minTextLength = 50
	// minAlphaRatio is the minimum fraction of letters among non-whitespace
	// runes; text below it is treated as markup or garbage
	minAlphaRatio = 0.6
)

// Validate checks that article text is worth analyzing and returns it
// trimmed. Empty, too-short, or low-letter-ratio text is rejected with a
// *ValidationError; such articles are skipped, not treated as system faults.
func (a *Analyzer) Validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Reason: "empty text"}
	}

	if n := utf8.RuneCountInString(trimmed); n < minTextLength {
		return "", &ValidationError{
			Reason: fmt.Sprintf("text too short: %d runes, minimum %d", n, minTextLength),
		}
	}

	letters := 0
	total := 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 || float64(letters)/float64(total) < minAlphaRatio {
		return "", &ValidationError{Reason: "alphabetic ratio below quality threshold"}
	}

	return trimmed, nil
}
