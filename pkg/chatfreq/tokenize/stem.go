package tokenize

import (
	"strings"

	"github.com/kljensen/snowball"
)

// DefaultLanguage is the stemming algorithm used when a language code is not
// recognized. The fallback is silent: an unknown code is not an error.
const DefaultLanguage = "english"

// languages maps short codes and full names onto the snowball algorithm
// names. Only languages the snowball package implements appear here.
var languages = map[string]string{
	"en": "english",
	"ru": "russian",
	"es": "spanish",
	"fr": "french",
	"sv": "swedish",
	"no": "norwegian",
	"hu": "hungarian",

	"english":   "english",
	"russian":   "russian",
	"spanish":   "spanish",
	"french":    "french",
	"swedish":   "swedish",
	"norwegian": "norwegian",
	"hungarian": "hungarian",
}

// Language resolves a language code (case-insensitive) to a supported
// snowball algorithm name, falling back to DefaultLanguage.
func Language(code string) string {
	if lang, ok := languages[strings.ToLower(code)]; ok {
		return lang
	}
	return DefaultLanguage
}

// Stemmer reduces tokens to their linguistic stems using the snowball
// algorithm for a fixed language.
type Stemmer struct {
	language string
}

// NewStemmer creates a stemmer for the given language code.
func NewStemmer(code string) *Stemmer {
	return &Stemmer{language: Language(code)}
}

// Language returns the resolved algorithm name.
func (s *Stemmer) Language() string {
	return s.language
}

// Stem returns the stem of one word. Words the algorithm cannot handle are
// returned unchanged.
func (s *Stemmer) Stem(word string) string {
	stem, err := snowball.Stem(word, s.language, false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// StemAll stems every token, preserving order and multiplicity: exactly one
// output token per input token.
func (s *Stemmer) StemAll(tokens []string) []string {
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = s.Stem(tok)
	}
	return stemmed
}
