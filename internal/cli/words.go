package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "words <run-id>",
		Short: "Show the ranked words of an archived run",
		Args:  cobra.ExactArgs(1),
		Run:   runWords,
	}

	cmd.Flags().IntP("top", "n", 40, "Number of words to show")

	RootCmd.AddCommand(cmd)
}

func runWords(cmd *cobra.Command, args []string) {
	top, _ := cmd.Flags().GetInt("top")

	s := requireArchive(cmd.Context())
	defer s.Close()

	words, err := s.TopWords(cmd.Context(), args[0], top)
	if err != nil {
		exitErr("load words", err)
	}
	if len(words) == 0 {
		fmt.Println("No words found for run", args[0])
		return
	}
	for _, w := range words {
		fmt.Printf("%d. %s (%d)\n", w.Rank, w.Word, w.Count)
	}
}
