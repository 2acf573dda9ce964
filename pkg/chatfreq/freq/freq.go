package freq

import "sort"

// WordCount pairs a stemmed word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Count aggregates tokens into a word → occurrences mapping. The result is
// independent of token order and never contains a zero count.
func Count(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// Rank sorts the mapping by count descending and truncates to at most max
// entries. Ties break on ascending word order so the result is reproducible
// for a given mapping.
func Rank(counts map[string]int, max int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if max >= 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
