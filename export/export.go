// Package export provides functionality to export a book collection to
// zip archives containing the database snapshot and one rendered file per
// book.
//
// The export process happens in two steps:
// 1. Generate export data - an in-memory description of the archive
// 2. Create archive - the actual zip file from the export data
//
// This split keeps archive generation testable without touching the
// file system.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/arthur-debert/booklib/booklib"
	"github.com/arthur-debert/booklib/formats"
	"github.com/google/uuid"
)

// Export creates a complete export archive for the collection and returns
// the path to the archive, placed in a fresh temporary directory.
func Export(lib *booklib.Library, options ExportOptions) (string, error) {
	exportData, err := GenerateExportData(lib, options)
	if err != nil {
		return "", fmt.Errorf("failed to generate export data: %w", err)
	}

	archivePath, err := CreateExportArchiveToTempDir(exportData)
	if err != nil {
		return "", fmt.Errorf("failed to create export archive: %w", err)
	}

	return archivePath, nil
}

// ExportToPath creates an export archive at the specified path.
func ExportToPath(lib *booklib.Library, options ExportOptions, outputPath string) error {
	exportData, err := GenerateExportData(lib, options)
	if err != nil {
		return fmt.Errorf("failed to generate export data: %w", err)
	}

	if err := CreateExportArchive(exportData, outputPath); err != nil {
		return fmt.Errorf("failed to create export archive: %w", err)
	}

	return nil
}

// GenerateExportData creates the export data structure for the books
// selected by the options.
func GenerateExportData(lib *booklib.Library, options ExportOptions) (*ExportData, error) {
	if options.BookFormat == nil {
		options.BookFormat = formats.PlainText
	}

	books := lib.Search(options.SearchTerm)

	// Archive filename with timestamp
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	archiveFilename := fmt.Sprintf("library-export-%s.zip", timestamp)

	// The db snapshot always contains the full collection, mirroring what
	// the store would write.
	dbFile := DatabaseFile{
		Filename: "db.json",
		Contents: lib.List(),
	}

	bookFiles := make([]BookFile, 0, len(books))
	for _, book := range books {
		content, err := options.BookFormat.Render(book)
		if err != nil {
			return nil, fmt.Errorf("failed to render %q: %w", book.Title, err)
		}

		bookFiles = append(bookFiles, BookFile{
			Filename: generateFilename(book, options.BookFormat),
			Content:  content,
		})
	}

	return &ExportData{
		ArchiveFilename: archiveFilename,
		Contents: ExportContent{
			DB:    dbFile,
			Books: bookFiles,
		},
	}, nil
}

// generateFilename creates a filename for a book using the format
// <uuid>-<title>.<ext>. Books have no stored identity and duplicate
// titles are legal, so a fresh UUID keeps archive entries distinct.
func generateFilename(book booklib.Book, format *formats.BookFormat) string {
	ext := format.Extension
	if ext == "" {
		ext = ".txt"
	}
	return uuid.New().String() + "-" + sanitizeTitle(book.Title) + ext
}

var dashRun = regexp.MustCompile("-+")

// sanitizeTitle cleans a title for use in a filename:
// lowercase, spaces to dashes, alphanumeric/dash/underscore only,
// truncated to 40 chars, "untitled" as fallback.
func sanitizeTitle(title string) string {
	result := strings.ToLower(title)
	result = strings.ReplaceAll(result, " ", "-")

	var builder strings.Builder
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			builder.WriteRune(r)
		}
	}

	result = dashRun.ReplaceAllString(builder.String(), "-")
	result = strings.Trim(result, "-")

	if len(result) > 40 {
		result = result[:40]
	}
	if result == "" {
		result = "untitled"
	}

	return result
}
