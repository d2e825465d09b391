package cmd

import (
	"fmt"
	"os"

	"songshelf/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "songshelf",
	Short: "SongShelf is a token-gated song catalog API.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
