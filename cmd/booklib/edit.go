package main

import (
	"fmt"

	"github.com/arthur-debert/booklib/booklib"
	"github.com/spf13/cobra"
)

var (
	editTitle  string
	editAuthor string
	editYear   string
	editGenre  string
	editRead   bool
)

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Edit a book's details",
	Long: `Edit the first book whose title matches case-insensitively.

Only the flags you pass are changed; everything else stays as it is.
Renaming uses the current title to find the book and --title for the new
name.

Examples:
  booklib edit "Dune" --read
  booklib edit "Dune" --title "Dune (1965)" --genre "Science Fiction"
  booklib edit "The Hobbit" --read=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := booklib.Patch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("author") {
			patch.Author = &editAuthor
		}
		if cmd.Flags().Changed("year") {
			patch.Year = &editYear
		}
		if cmd.Flags().Changed("genre") {
			patch.Genre = &editGenre
		}
		if cmd.Flags().Changed("read") {
			patch.Read = &editRead
		}

		if patch == (booklib.Patch{}) {
			return fmt.Errorf("nothing to change: pass at least one of --title, --author, --year, --genre, --read")
		}

		lib := openLibrary()
		defer lib.Close()

		found, err := lib.Update(args[0], patch)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		if !found {
			fmt.Printf("No book found with title '%s'\n", args[0])
			return nil
		}

		fmt.Printf("Updated '%s'\n", args[0])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVarP(&editAuthor, "author", "a", "", "new author")
	editCmd.Flags().StringVarP(&editYear, "year", "y", "", "new publication year")
	editCmd.Flags().StringVarP(&editGenre, "genre", "g", "", "new genre")
	editCmd.Flags().BoolVarP(&editRead, "read", "r", false, "read status (use --read=false to mark unread)")

	rootCmd.AddCommand(editCmd)
}
