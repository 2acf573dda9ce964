// Package report writes the ranked frequency table for downstream consumers.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/freq"
)

// WriteWordCounts writes one "<word> <count>" line per ranked entry.
func WriteWordCounts(w io.Writer, words []freq.WordCount) error {
	bw := bufio.NewWriter(w)
	for _, wc := range words {
		if _, err := fmt.Fprintf(bw, "%s %d\n", wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveWordCounts writes the ranked table to a file, replacing it if present.
func SaveWordCounts(path string, words []freq.WordCount) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteWordCounts(f, words); err != nil {
		return err
	}
	return f.Close()
}
