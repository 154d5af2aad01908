package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateExportArchive takes export data and creates a zip file at
// outputPath.
func CreateExportArchive(exportData *ExportData, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close archive file: %v\n", err)
		}
	}()

	zipWriter := zip.NewWriter(file)
	defer func() {
		if err := zipWriter.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close zip writer: %v\n", err)
		}
	}()

	if err := addDatabaseToZip(zipWriter, exportData.Contents.DB); err != nil {
		return fmt.Errorf("failed to add database to zip: %w", err)
	}

	for _, bookFile := range exportData.Contents.Books {
		if err := addBookToZip(zipWriter, bookFile); err != nil {
			return fmt.Errorf("failed to add book %s to zip: %w", bookFile.Filename, err)
		}
	}

	return nil
}

// CreateExportArchiveToTempDir creates an export archive in a temporary
// directory and returns its path.
func CreateExportArchiveToTempDir(exportData *ExportData) (string, error) {
	tempDir, err := os.MkdirTemp("", "booklib-export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	archivePath := filepath.Join(tempDir, exportData.ArchiveFilename)
	if err := CreateExportArchive(exportData, archivePath); err != nil {
		if err := os.RemoveAll(tempDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to clean up temp directory: %v\n", err)
		}
		return "", err
	}

	return archivePath, nil
}

// addDatabaseToZip adds the database JSON file to the zip archive
func addDatabaseToZip(zipWriter *zip.Writer, dbFile DatabaseFile) error {
	header := &zip.FileHeader{
		Name:     dbFile.Filename,
		Method:   zip.Deflate,
		Modified: time.Now(),
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create database file in zip: %w", err)
	}

	jsonData, err := json.MarshalIndent(dbFile.Contents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal database contents: %w", err)
	}

	if _, err := writer.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write database contents: %w", err)
	}

	return nil
}

// addBookToZip adds a rendered book file to the zip archive
func addBookToZip(zipWriter *zip.Writer, bookFile BookFile) error {
	header := &zip.FileHeader{
		Name:     bookFile.Filename,
		Method:   zip.Deflate,
		Modified: time.Now(),
	}

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create book file in zip: %w", err)
	}

	if _, err := writer.Write([]byte(bookFile.Content)); err != nil {
		return fmt.Errorf("failed to write book content: %w", err)
	}

	return nil
}
