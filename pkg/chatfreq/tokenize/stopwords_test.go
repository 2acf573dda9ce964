package tokenize

import (
	"reflect"
	"testing"
)

func TestStopwordsFilter(t *testing.T) {
	stops := NewStopwords([]string{"this", "that"})

	got := stops.Filter([]string{"keep", "this", "word", "that", "stays"})
	want := []string{"keep", "word", "stays"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStopwordsCaseNormalized(t *testing.T) {
	// Entries are lowercased at construction; tokens arrive lowercased.
	stops := NewStopwords([]string{"THIS"})
	if !stops.Contains("this") {
		t.Error("expected uppercase entry to match lowercase token")
	}
}

func TestStopwordsFilterIdempotent(t *testing.T) {
	stops := NewStopwords([]string{"and", "with"})
	tokens := []string{"words", "and", "more", "with", "words"}

	once := stops.Filter(tokens)
	twice := stops.Filter(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent filter, got %v then %v", once, twice)
	}
}

func TestStopwordsEmptySetKeepsAll(t *testing.T) {
	stops := NewStopwords(nil)
	tokens := []string{"every", "token", "kept"}

	got := stops.Filter(tokens)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("expected %v, got %v", tokens, got)
	}
}
