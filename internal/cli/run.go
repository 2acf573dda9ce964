package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatfreq/chatfreq/pkg/chatfreq"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/config"
	"github.com/chatfreq/chatfreq/pkg/chatfreq/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan a chat export and rank word frequencies",
		Run:   runRun,
	}

	cmd.Flags().StringP("input", "i", "", "Chat export file (required)")
	cmd.Flags().StringP("output", "o", "", "Write the table as \"word count\" lines to this file")
	cmd.Flags().Int("min-length", config.DefaultMinWord, "Minimum word length in bytes (clamped to at least 4)")
	cmd.Flags().Int("max-words", config.DefaultMaxWords, "Maximum number of ranked words")
	cmd.Flags().String("lang", config.DefaultLanguage, "Language code for stemming (en, ru, ...)")
	cmd.Flags().StringSlice("users", nil, "Only include messages from these usernames")
	cmd.Flags().String("from-date", "", "Skip messages before this date (YYYY-MM-DD)")
	cmd.Flags().String("to-date", "", "Skip messages after this date (YYYY-MM-DD)")
	cmd.Flags().String("stoplist", "", "YAML stopword list (terms: [...])")
	cmd.Flags().IntP("top", "n", 40, "Number of top words to print")

	cmd.MarkFlagRequired("input")

	RootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	minLength, _ := cmd.Flags().GetInt("min-length")
	maxWords, _ := cmd.Flags().GetInt("max-words")
	lang, _ := cmd.Flags().GetString("lang")
	users, _ := cmd.Flags().GetStringSlice("users")
	fromDate, _ := cmd.Flags().GetString("from-date")
	toDate, _ := cmd.Flags().GetString("to-date")
	stoplist, _ := cmd.Flags().GetString("stoplist")
	top, _ := cmd.Flags().GetInt("top")

	opts := chatfreq.Options{
		InputPath:     input,
		MinWordLength: minLength,
		MaxWords:      maxWords,
		Language:      lang,
		Users:         users,
		Logger:        newLogger(),
	}

	var err error
	if opts.FromDate, err = parseDate(fromDate, false); err != nil {
		exitErr("parse --from-date", err)
	}
	if opts.ToDate, err = parseDate(toDate, true); err != nil {
		exitErr("parse --to-date", err)
	}

	if stoplist != "" {
		sl, err := config.LoadStoplist(stoplist)
		if err != nil {
			exitErr("load stoplist", err)
		}
		opts.Stopwords = sl.Terms
	}

	ctx := cmd.Context()
	archive, err := openArchive(ctx)
	if err != nil {
		exitErr("open archive", err)
	}
	if archive != nil {
		defer archive.Close()
		opts.Store = archive
	}

	res, err := chatfreq.Run(ctx, opts)
	if err != nil {
		exitErr("run pipeline", err)
	}

	if output != "" {
		if err := report.SaveWordCounts(output, res.Words); err != nil {
			exitErr("write output", err)
		}
		fmt.Printf("Saved %d words to %s\n", len(res.Words), output)
	}

	if top > len(res.Words) {
		top = len(res.Words)
	}
	fmt.Printf("Run %s: %d messages, %d tokens, %d unique words\n",
		res.RunID, res.Messages, res.Tokens, len(res.Words))
	fmt.Printf("Top %d words:\n", top)
	for i, w := range res.Words[:top] {
		fmt.Printf("%d. %s (%d)\n", i+1, w.Word, w.Count)
	}
}

// parseDate parses a YYYY-MM-DD bound; end-of-day bounds cover the whole day.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
