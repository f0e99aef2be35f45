package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows the games compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	ids := registry.IDs()
	if len(ids) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, id := range ids {
		g, err := registry.Create(id)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, g.Title())
	}
}
