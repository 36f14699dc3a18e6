package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games this binary can serve",
	Long:  `Shows the games registered in this build and their IDs.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printGames(os.Stdout, registry.List())
	},
}

// printGames writes an ID/Title table of the registered games.
func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}
