package analyzer

import (
	"slices"
	"strings"
)

// sentenceDelimiter reports whether a rune ends a sentence.
func sentenceDelimiter(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '\n'
}

// splitSentences splits raw article text into trimmed, non-empty sentences.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, sentenceDelimiter)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ExtractContexts returns, for each requested word, the first sentence of
// text containing it. Matching is case-insensitive and accent-folded; words
// with no matching sentence are omitted from the result.
func (a *Analyzer) ExtractContexts(text string, words []string) map[string]string {
	sentences := splitSentences(text)

	// Clean each sentence once so lookups are cheap per word.
	cleaned := make([][]string, len(sentences))
	for i, s := range sentences {
		cleaned[i] = strings.Fields(a.Clean(s))
	}

	contexts := make(map[string]string, len(words))
	for _, word := range words {
		normalized := strings.Fields(a.Clean(word))
		if len(normalized) == 0 {
			continue
		}
		target := normalized[0]

		for i, fields := range cleaned {
			if slices.Contains(fields, target) {
				contexts[word] = sentences[i]
				break
			}
		}
	}

	return contexts
}
