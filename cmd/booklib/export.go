package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/booklib/export"
	"github.com/arthur-debert/booklib/formats"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFormat string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a zip archive",
	Long: `Export the catalog to a zip archive containing the database and one
rendered file per book.

The archive contains:
- db.json: the complete catalog, as stored on disk
- one file per book in the chosen format

Examples:
  booklib export                          # Export everything as plaintext
  booklib export --format markdown        # Export as markdown
  booklib export --search herbert         # Export matching books only
  booklib export --output backup.zip      # Export to a specific file

Available formats: plaintext, markdown, yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formats.Get(exportFormat)
		if err != nil {
			return fmt.Errorf("invalid format %q: %w", exportFormat, err)
		}

		lib := openLibrary()
		defer lib.Close()

		options := export.ExportOptions{
			BookFormat: format,
			SearchTerm: exportSearch,
		}

		selected := lib.Search(exportSearch)
		if len(selected) == 0 {
			fmt.Println("No books found to export.")
			return nil
		}
		fmt.Printf("Exporting %d book(s) as %s...\n", len(selected), format.Name)

		var archivePath string
		if exportOutput != "" {
			dir := filepath.Dir(exportOutput)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := export.ExportToPath(lib, options, exportOutput); err != nil {
				return fmt.Errorf("failed to export to %s: %w", exportOutput, err)
			}
			archivePath = exportOutput
		} else {
			archivePath, err = export.Export(lib, options)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
		}

		absPath, err := filepath.Abs(archivePath)
		if err != nil {
			absPath = archivePath
		}

		fmt.Printf("📦 Archive created: %s\n", absPath)
		if info, err := os.Stat(archivePath); err == nil && verbose {
			fmt.Printf("Archive size: %d bytes\n", info.Size())
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path for the export archive")
	exportCmd.Flags().StringVar(&exportFormat, "format", "plaintext", "book format (plaintext, markdown, yaml)")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "export only books matching this search term")

	rootCmd.AddCommand(exportCmd)
}
