package tokenize

import "strings"

// Stopwords is an injected set of words excluded from frequency analysis.
// Membership is exact lowercase match.
type Stopwords struct {
	set map[string]struct{}
}

// NewStopwords builds a set from the given words, lowercasing each entry.
func NewStopwords(words []string) *Stopwords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Stopwords{set: set}
}

// Contains reports whether word is a stopword.
func (s *Stopwords) Contains(word string) bool {
	_, ok := s.set[word]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Stopwords) Len() int {
	return len(s.set)
}

// Filter returns the tokens that are not stopwords, order preserved.
func (s *Stopwords) Filter(tokens []string) []string {
	if len(s.set) == 0 {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !s.Contains(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}
