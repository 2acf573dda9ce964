package main

import (
	"os"

	"github.com/chatfreq/chatfreq/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
