package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search books by title or author",
	Long: `Search for books whose title or author contains the given text.

The match is case-insensitive and results keep catalog order.

Examples:
  booklib search dune
  booklib search "frank herbert"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := openLibrary()
		defer lib.Close()

		term := strings.Join(args, " ")
		books := lib.Search(term)

		if len(books) == 0 {
			fmt.Printf("No books found matching '%s'\n", term)
			return nil
		}

		printBookTable(books)
		fmt.Printf("\nFound %d book(s) matching '%s'\n", len(books), term)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
