package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Long: `Display reading statistics and the genre distribution.

Example:
  booklib stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := openLibrary()
		defer lib.Close()

		stats := lib.Stats()

		fmt.Println("📊 Library Statistics")
		fmt.Println("=====================")
		fmt.Printf("Total books:     %d\n", stats.Total)
		fmt.Printf("Books read:      %d\n", stats.Read)
		fmt.Printf("Books unread:    %d\n", stats.Unread)
		fmt.Printf("Completion rate: %.1f%%\n", stats.CompletionRate)

		genres := lib.GenreDistribution()
		if len(genres) == 0 {
			return nil
		}

		// Stable output order for the chart.
		names := make([]string, 0, len(genres))
		for name := range genres {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("\n📚 Genre Distribution")
		fmt.Println("=====================")
		for _, name := range names {
			label := name
			if label == "" {
				label = "(no genre)"
			}
			fmt.Printf("%-20s %d\n", label, genres[name])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
