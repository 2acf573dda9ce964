package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/ingest"
)

// MinLengthFloor is the lowest minimum token length the tokenizer accepts.
// Configured values below it are clamped up to keep single-letter and other
// noise tokens out regardless of configuration.
const MinLengthFloor = 4

// Tokenizer splits message text into lowercase word tokens.
//
// A token is a maximal run of Unicode letters, Unicode numbers, underscores
// and hyphens; every other character (punctuation, symbols, emoji,
// whitespace) is a boundary and never part of a token. Runs are lowercased
// before the length check, and the minimum length is measured in encoded
// bytes, not runes, so a two-letter Cyrillic word already occupies four
// bytes and passes a minimum of 4.
type Tokenizer struct {
	minLength int
	lower     cases.Caser
}

// NewTokenizer creates a tokenizer with the given minimum token length,
// clamped to at least MinLengthFloor.
func NewTokenizer(minLength int) *Tokenizer {
	if minLength < MinLengthFloor {
		minLength = MinLengthFloor
	}
	return &Tokenizer{
		minLength: minLength,
		lower:     cases.Lower(language.Und),
	}
}

// Tokenize extracts tokens from a single text, left to right.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := t.lower.String(current.String())
		if len(word) >= t.minLength {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if isWordRune(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// TokenizeMessages extracts tokens from every message, message order
// preserved, tokens within a message in left-to-right order.
func (t *Tokenizer) TokenizeMessages(messages []ingest.SimpleMessage) []string {
	var tokens []string
	for _, msg := range messages {
		tokens = append(tokens, t.Tokenize(msg.Text)...)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-'
}
