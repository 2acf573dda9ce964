package ingest

import (
	"strings"
	"testing"
)

func TestScannerSingleRecord(t *testing.T) {
	s := NewScanner(`garbage {"id": 1} trailing`)
	spans := s.Spans()

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := NewScanner(`garbage {"id": 1} trailing`).Text(spans[0]); got != `{"id": 1}` {
		t.Errorf("expected span text %q, got %q", `{"id": 1}`, got)
	}
}

func TestScannerNestedBraces(t *testing.T) {
	// {A{B}C} must yield one span covering the whole region, not two.
	input := `{"a": {"b": 1}, "c": 2}`
	s := NewScanner(input)
	spans := s.Spans()

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := NewScanner(input).Text(spans[0]); got != input {
		t.Errorf("expected span to cover whole input, got %q", got)
	}
}

func TestScannerMultipleRecords(t *testing.T) {
	input := `[{"id": 1}, {"id": 2}, {"id": 3}]`
	spans := NewScanner(input).Spans()

	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
}

func TestScannerUnmatchedBrace(t *testing.T) {
	// A lone { with no close yields zero spans and the scanner terminates.
	spans := NewScanner(`{"id": 1, "never closed`).Spans()
	if len(spans) != 0 {
		t.Errorf("expected 0 spans, got %d", len(spans))
	}
}

func TestScannerResumesInsideUnmatchedRegion(t *testing.T) {
	// The outer { never closes, but the inner object must still be found.
	input := `{"broken": {"id": 5}`
	s := NewScanner(input)
	spans := s.Spans()

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := NewScanner(input).Text(spans[0]); got != `{"id": 5}` {
		t.Errorf("expected inner object, got %q", got)
	}
}

func TestScannerNoBraces(t *testing.T) {
	spans := NewScanner("no records here at all").Spans()
	if len(spans) != 0 {
		t.Errorf("expected 0 spans, got %d", len(spans))
	}
}

func TestScannerEmptyInput(t *testing.T) {
	spans := NewScanner("").Spans()
	if len(spans) != 0 {
		t.Errorf("expected 0 spans, got %d", len(spans))
	}
}

func TestScannerMultiByteOffsets(t *testing.T) {
	// Offsets are rune-based; emoji and Cyrillic before a record must not
	// shift the recovered text.
	input := `привет 🎉 {"текст": "значение"} done`
	s := NewScanner(input)
	span, ok := s.Next()
	if !ok {
		t.Fatal("expected a span")
	}
	if got := s.Text(span); got != `{"текст": "значение"}` {
		t.Errorf("got %q", got)
	}
}

func TestScannerDeeplyNestedAbandonment(t *testing.T) {
	// Pathological nesting of unmatched braces still terminates.
	input := strings.Repeat("{", 500) + "}"
	spans := NewScanner(input).Spans()

	// The innermost pair {} is balanced; every outer { is abandoned.
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Start != 499 || spans[0].End != 500 {
		t.Errorf("expected innermost pair, got %+v", spans[0])
	}
}
