// Package cli implements the chatfreq CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chatfreq/chatfreq/pkg/chatfreq/store"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/store/sqlite"
)

var (
	dbPath string
	quiet  bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "chatfreq",
	Short: "Word frequency tables from chat export dumps",
	Long: "chatfreq recovers message records from a chat export file (even a " +
		"truncated or malformed one), normalizes and stems the message text, " +
		"and produces a ranked word frequency table.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite run archive path (default: $CHATFREQ_DB, archive disabled when unset)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress stage diagnostics")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return os.Getenv("CHATFREQ_DB")
}

// openArchive opens the run archive, or returns nil when none is configured.
func openArchive(ctx context.Context) (store.Store, error) {
	path := getDBPath()
	if path == "" {
		return nil, nil
	}
	return sqlite.Open(ctx, path)
}

// requireArchive opens the run archive for commands that cannot work
// without one.
func requireArchive(ctx context.Context) store.Store {
	s, err := openArchive(ctx)
	if err != nil {
		exitErr("open archive", err)
	}
	if s == nil {
		exitErr("open archive", fmt.Errorf("no archive configured; pass --db or set CHATFREQ_DB"))
	}
	return s
}

func newLogger() *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
