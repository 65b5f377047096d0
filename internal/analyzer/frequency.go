package analyzer

import "sort"

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// CountFrequency tokenizes text and counts occurrences per distinct token.
// The sum of all counts equals the number of tokens.
func (a *Analyzer) CountFrequency(text string) map[string]int {
	freqs := make(map[string]int)
	for tok := range a.Tokens(text) {
		freqs[tok]++
	}
	return freqs
}

// TopWords returns at most n tokens ordered by descending count. Ties are
// broken by first occurrence in the token stream so results are
// deterministic. Returns ErrEmptyInput when nothing survives filtering.
func (a *Analyzer) TopWords(text string, n int) ([]WordCount, error) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	i := 0
	for tok := range a.Tokens(text) {
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
		}
		counts[tok]++
		i++
	}

	if len(counts) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Word] < firstSeen[out[j].Word]
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out, nil
}
