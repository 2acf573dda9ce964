package chatfreq

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/internalerr"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/store/memstore"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sampleExport is a truncated dump: the outer object never closes, so the
// scanner abandons it and recovers the individual message records inside.
const sampleExport = `{
 "name": "test chat",
 "messages": [
  {"id": 1, "type": "message", "date": "2023-05-01", "date_unixtime": "1682899200", "from": "alice", "text": "Flowers bloom"},
  {"id": 2, "type": "service", "date": "2023-05-01", "date_unixtime": "1682899300"},
  {"id": 3, "type": "message", "date": "2023-05-02", "date_unixtime": "1682985600", "from": "bob", "text": ["flowers ", {"type": "bold", "text": "flowers"}]}`

func TestRunEndToEnd(t *testing.T) {
	archive := memstore.New()
	res, err := Run(context.Background(), Options{
		InputPath: writeExport(t, sampleExport),
		MaxWords:  10,
		Language:  "en",
		Stopwords: []string{"bloom"},
		Store:     archive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The service message has no text and drops in simplification.
	if res.Messages != 2 {
		t.Errorf("expected 2 messages with text, got %d", res.Messages)
	}
	if res.Tokens != 3 {
		t.Errorf("expected 3 tokens after stopword filtering, got %d", res.Tokens)
	}
	if len(res.Words) != 1 || res.Words[0].Word != "flower" || res.Words[0].Count != 3 {
		t.Errorf("expected [(flower, 3)], got %+v", res.Words)
	}

	run, found, err := archive.GetRun(context.Background(), res.RunID)
	if err != nil || !found {
		t.Fatalf("expected archived run, found=%v err=%v", found, err)
	}
	if len(run.Words) != 1 || run.Words[0].Rank != 1 {
		t.Errorf("unexpected archived words: %+v", run.Words)
	}
}

func TestRunUserFilter(t *testing.T) {
	res, err := Run(context.Background(), Options{
		InputPath: writeExport(t, sampleExport),
		MaxWords:  10,
		Language:  "en",
		Users:     []string{"alice"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Messages != 1 {
		t.Errorf("expected 1 message from alice, got %d", res.Messages)
	}
}

func TestRunNoRecordsIsFatal(t *testing.T) {
	_, err := Run(context.Background(), Options{
		InputPath: writeExport(t, "nothing structured in here"),
	})
	if !errors.Is(err, internalerr.ErrNoRecords) {
		t.Errorf("expected ErrNoRecords, got %v", err)
	}
}

func TestRunNoTextIsFatal(t *testing.T) {
	content := `{"id": 1, "type": "service", "date": "d", "date_unixtime": "1"}`
	_, err := Run(context.Background(), Options{
		InputPath: writeExport(t, content),
	})
	if !errors.Is(err, internalerr.ErrNoText) {
		t.Errorf("expected ErrNoText, got %v", err)
	}
}

func TestRunEmptyInputPath(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
