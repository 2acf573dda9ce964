package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s := requireArchive(cmd.Context())
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), limit)
	if err != nil {
		exitErr("list runs", err)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  lang=%s  messages=%d  tokens=%d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Language,
			r.Messages, r.Tokens, r.InputPath)
	}
}
