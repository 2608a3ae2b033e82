package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-run/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available presentation backends",
	Long:  `Shows the backends that can run a local game via 'chickenrun play --backend'.`,
	Run:   runBackends,
}

func runBackends(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'chickenrun play --backend <name>' to use one.")
}
