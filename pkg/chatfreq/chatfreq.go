// Package chatfreq turns loosely-structured chat export dumps into ranked
// word frequency tables. The export is scanned for individually well-formed
// message records (the file as a whole may be truncated or malformed), each
// record's text is normalized, tokenized, filtered against a stopword set,
// stemmed, and the resulting stems are counted and ranked.
package chatfreq

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/config"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/freq"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/ingest"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/internalerr"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/store"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/tokenize"
)

// Options configures one pipeline run. Values are expected to be validated
// and defaulted by the caller (the CLI layer owns argument parsing).
type Options struct {
	// InputPath is the chat export file to scan.
	InputPath string
	// MinWordLength is the minimum token length in encoded bytes. The
	// tokenizer clamps it to at least tokenize.MinLengthFloor.
	MinWordLength int
	// MaxWords caps the ranked output length. Zero selects the default.
	MaxWords int
	// Language selects the stemming algorithm; unknown codes silently fall
	// back to English.
	Language string
	// Users optionally restricts messages to the given usernames.
	Users []string
	// FromDate and ToDate optionally bound messages by timestamp.
	FromDate time.Time
	ToDate   time.Time
	// Stopwords is the injected stopword set.
	Stopwords []string
	// Store, when set, archives the completed run.
	Store store.Store
	// Logger receives stage-boundary diagnostics; nil means silent.
	Logger *zap.Logger
}

// Result is the terminal artifact of a run.
type Result struct {
	// RunID is the ULID minted for this run.
	RunID string
	// Messages is the number of messages with extractable text that survived
	// filtering.
	Messages int
	// Tokens is the number of stemmed tokens that were counted.
	Tokens int
	// Words is the ranked frequency table, count descending.
	Words []freq.WordCount
}

// Run executes the full pipeline: scan → decode → simplify → tokenize →
// stopword filter → stem → count → rank. Per-record defects are absorbed
// with diagnostics; only I/O failure or whole-pipeline emptiness is fatal.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.InputPath == "" {
		return Result{}, fmt.Errorf("input path: %w", internalerr.ErrInvalidConfig)
	}
	if opts.MaxWords == 0 {
		opts.MaxWords = config.DefaultMaxWords
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	messages, err := ingest.ReadMessages(opts.InputPath, logger)
	if err != nil {
		return Result{}, err
	}
	logger.Info("recovered records", zap.Int("messages", len(messages)))

	simple := ingest.Simplify(messages, ingest.Filter{
		Users: opts.Users,
		From:  opts.FromDate,
		To:    opts.ToDate,
	})
	if len(simple) == 0 {
		return Result{}, fmt.Errorf("%s: %w", opts.InputPath, internalerr.ErrNoText)
	}
	logger.Info("extracted text", zap.Int("messages", len(simple)))

	tokenizer := tokenize.NewTokenizer(opts.MinWordLength)
	tokens := tokenizer.TokenizeMessages(simple)
	logger.Info("tokenized", zap.Int("tokens", len(tokens)))

	stops := tokenize.NewStopwords(opts.Stopwords)
	tokens = stops.Filter(tokens)
	logger.Info("filtered stopwords", zap.Int("tokens", len(tokens)))

	stemmer := tokenize.NewStemmer(opts.Language)
	tokens = stemmer.StemAll(tokens)
	logger.Info("stemmed", zap.String("language", stemmer.Language()))

	counts := freq.Count(tokens)
	logger.Info("counted", zap.Int("unique", len(counts)))

	result := Result{
		RunID:    newRunID(),
		Messages: len(simple),
		Tokens:   len(tokens),
		Words:    freq.Rank(counts, opts.MaxWords),
	}

	if opts.Store != nil {
		if err := archive(ctx, opts, result); err != nil {
			return Result{}, fmt.Errorf("archive run: %w", err)
		}
		logger.Info("archived run", zap.String("run_id", result.RunID))
	}

	return result, nil
}

func archive(ctx context.Context, opts Options, res Result) error {
	words := make([]store.WordCount, len(res.Words))
	for i, w := range res.Words {
		words[i] = store.WordCount{Word: w.Word, Count: w.Count, Rank: i + 1}
	}

	return opts.Store.SaveRun(ctx, store.Run{
		ID:        res.RunID,
		InputPath: opts.InputPath,
		Language:  tokenize.Language(opts.Language),
		CreatedAt: time.Now(),
		Messages:  res.Messages,
		Tokens:    res.Tokens,
		Words:     words,
	})
}

func newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
