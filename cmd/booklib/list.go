package main

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/booklib/booklib"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in the catalog",
	Long: `List every book in the catalog in the order they were added.

Example:
  booklib list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := openLibrary()
		defer lib.Close()

		books := lib.List()
		if len(books) == 0 {
			fmt.Println("Your library is empty. Add some books to get started!")
			return nil
		}

		printBookTable(books)
		fmt.Printf("\n%d book(s) in the catalog\n", len(books))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// printBookTable renders books as a fixed-width table.
func printBookTable(books []booklib.Book) {
	fmt.Printf("%-34s %-24s %-6s %-14s %-8s %-10s\n", "TITLE", "AUTHOR", "YEAR", "GENRE", "STATUS", "ADDED")
	fmt.Println(strings.Repeat("-", 100))

	for _, book := range books {
		status := "📖 Unread"
		if book.Read {
			status = "✅ Read"
		}
		fmt.Printf("%-34s %-24s %-6s %-14s %-8s %-10s\n",
			truncate(book.Title, 34),
			truncate(book.Author, 24),
			book.Year,
			truncate(book.Genre, 14),
			status,
			book.AddedDate,
		)
	}
}

// truncate shortens s to fit a table column.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
