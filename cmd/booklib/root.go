package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/booklib/booklib"
	"github.com/spf13/cobra"
)

var (
	dataFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "booklib",
	Short: "A personal library catalog",
	Long: `Booklib keeps a catalog of your books in a single JSON file.

Books have a title, author, publication year, genre, read status and the
date they were added. You can add, edit, delete and search books, view
reading statistics, and export the collection to an archive.

Examples:
  booklib add "Dune" --author "Frank Herbert" --year 1965 --genre Sci-Fi
  booklib list
  booklib search herbert
  booklib edit "Dune" --read
  booklib stats
  booklib export --format markdown`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "path to the catalog file (default resolved from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// openLibrary opens the catalog at the resolved data file path.
func openLibrary() *booklib.Library {
	lib := booklib.Open(resolveDataFile())
	if verbose && lib.LoadStatus() == booklib.LoadCorrupt {
		fmt.Fprintln(os.Stderr, "Warning: catalog file could not be parsed, starting from an empty collection")
	}
	return lib
}
