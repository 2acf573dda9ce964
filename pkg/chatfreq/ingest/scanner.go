package ingest

// Span marks one candidate record inside the scanned input.
// Start and End are inclusive rune offsets of the opening and closing braces.
type Span struct {
	Start int
	End   int
}

// Scanner recovers top-level brace-delimited records from raw input that may
// not be parseable as one document. It tracks brace nesting depth and emits a
// span whenever the depth returns to zero; everything between records
// (commas, array brackets, garbage) is skipped.
//
// The scan works over runes rather than bytes so that multi-byte characters
// inside string values never desynchronize the offsets.
type Scanner struct {
	runes []rune
	pos   int
}

// NewScanner creates a scanner over the full input text.
func NewScanner(content string) *Scanner {
	return &Scanner{runes: []rune(content)}
}

// Next returns the next balanced top-level record span. The second return
// value is false when no span remains.
//
// An opening brace with no matching close is abandoned: the cursor advances
// one past it and the scan resumes, so any candidate braces inside the
// unmatched region are still visited. The cursor strictly advances on every
// call, which guarantees termination.
func (s *Scanner) Next() (Span, bool) {
	for s.pos < len(s.runes) {
		start := s.nextBrace()
		if start < 0 {
			s.pos = len(s.runes)
			return Span{}, false
		}

		depth := 1
		for i := start + 1; i < len(s.runes); i++ {
			switch s.runes[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					s.pos = i + 1
					return Span{Start: start, End: i}, true
				}
			}
		}

		// Unmatched opening brace; step past it and keep looking.
		s.pos = start + 1
	}
	return Span{}, false
}

// Text returns the input substring covered by a span.
func (s *Scanner) Text(sp Span) string {
	return string(s.runes[sp.Start : sp.End+1])
}

// Spans drains the scanner and returns every remaining span in order.
func (s *Scanner) Spans() []Span {
	var spans []Span
	for {
		sp, ok := s.Next()
		if !ok {
			return spans
		}
		spans = append(spans, sp)
	}
}

func (s *Scanner) nextBrace() int {
	for i := s.pos; i < len(s.runes); i++ {
		if s.runes[i] == '{' {
			return i
		}
	}
	return -1
}
