package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete books by title",
	Long: `Delete every book whose title matches case-insensitively.

Deleting a title that isn't in the catalog is not an error.

Example:
  booklib delete "Dune"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := openLibrary()
		defer lib.Close()

		title := args[0]
		matches := 0
		for _, book := range lib.List() {
			if strings.EqualFold(book.Title, title) {
				matches++
			}
		}

		if err := lib.Delete(title); err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}

		if matches == 0 {
			fmt.Printf("No book found with title '%s'\n", title)
			return nil
		}
		fmt.Printf("Removed %d book(s) titled '%s'\n", matches, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
