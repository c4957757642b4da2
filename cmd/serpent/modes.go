package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/modes"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all available game modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	defs := modes.List()

	if len(defs) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, d := range defs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Description)
	}

	fmt.Println()
	fmt.Println("Run 'serpent play --mode <id>' to play a mode.")
}
