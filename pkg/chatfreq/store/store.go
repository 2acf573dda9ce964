package store

import (
	"context"
	"time"
)

// Store archives completed pipeline runs for later inspection.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	TopWords(ctx context.Context, runID string, k int) ([]WordCount, error)
}

// Run is one archived pipeline execution.
type Run struct {
	ID        string
	InputPath string
	Language  string
	CreatedAt time.Time
	Messages  int
	Tokens    int
	Words     []WordCount
}

// WordCount is one ranked entry of a run's frequency table. Rank is
// 1-based in descending count order.
type WordCount struct {
	Word  string
	Count int
	Rank  int
}
