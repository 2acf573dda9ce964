package ingest

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/internalerr"
)

// ReadMessages reads a chat export file and recovers every individually
// well-formed message record. The file as a whole is not required to be valid
// JSON: it is scanned for balanced brace-delimited spans and each span is
// decoded on its own. Malformed spans are logged and skipped.
//
// Returns internalerr.ErrNoRecords when the whole scan yields nothing, since
// downstream frequency analysis is meaningless on empty input.
func ReadMessages(path string, logger *zap.Logger) ([]Message, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	messages := ScanMessages(string(content), logger)
	if len(messages) == 0 {
		return nil, fmt.Errorf("%s: %w", path, internalerr.ErrNoRecords)
	}
	return messages, nil
}

// ScanMessages recovers messages from already-loaded export content.
func ScanMessages(content string, logger *zap.Logger) []Message {
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := NewScanner(content)
	var messages []Message
	for {
		span, ok := scanner.Next()
		if !ok {
			return messages
		}
		msg, err := DecodeMessage(scanner.Text(span))
		if err != nil {
			logger.Warn("skipping malformed record",
				zap.Int("offset", span.Start),
				zap.Error(err))
			continue
		}
		messages = append(messages, msg)
	}
}
