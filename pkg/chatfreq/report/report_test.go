package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/freq"
)

func TestWriteWordCounts(t *testing.T) {
	var buf bytes.Buffer
	words := []freq.WordCount{
		{Word: "attack", Count: 9},
		{Word: "defend", Count: 5},
	}

	if err := WriteWordCounts(&buf, words); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "attack 9\ndefend 5\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestSaveWordCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	words := []freq.WordCount{{Word: "мир", Count: 3}}

	if err := SaveWordCounts(path, words); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "мир 3\n" {
		t.Errorf("expected %q, got %q", "мир 3\n", string(data))
	}
}

func TestWriteWordCountsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWordCounts(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}
