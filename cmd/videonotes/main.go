package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "videonotes",
		Short:         "Download and summarize YouTube video transcripts using AI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newProcessCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
