package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addAuthor string
	addYear   string
	addGenre  string
	addRead   bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a book to the catalog",
	Long: `Add a book with a title and author, plus optional year and genre.

Title and author are required; year and genre are free text.

Examples:
  booklib add "Dune" --author "Frank Herbert" --year 1965 --genre Sci-Fi
  booklib add "The Hobbit" -a "J.R.R. Tolkien" --read`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		author := strings.TrimSpace(addAuthor)
		if title == "" {
			return fmt.Errorf("title cannot be empty")
		}
		if author == "" {
			return fmt.Errorf("author cannot be empty")
		}

		lib := openLibrary()
		defer lib.Close()

		if err := lib.Add(title, author, addYear, addGenre, addRead); err != nil {
			return fmt.Errorf("failed to add book: %w", err)
		}

		fmt.Printf("Added %q by %s\n", title, author)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "author name (required)")
	addCmd.Flags().StringVarP(&addYear, "year", "y", "", "publication year")
	addCmd.Flags().StringVarP(&addGenre, "genre", "g", "", "genre")
	addCmd.Flags().BoolVarP(&addRead, "read", "r", false, "mark the book as already read")

	rootCmd.AddCommand(addCmd)
}
