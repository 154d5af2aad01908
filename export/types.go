package export

import (
	"github.com/arthur-debert/booklib/formats"
)

// ExportData represents the complete export structure with all information
// needed to recreate the archive: the database snapshot plus one rendered
// file per book
type ExportData struct {
	ArchiveFilename string        `json:"archive-filename"`
	Contents        ExportContent `json:"contents"`
}

// ExportContent contains the database and book files to be exported
type ExportContent struct {
	DB    DatabaseFile `json:"db"`
	Books []BookFile   `json:"books"`
}

// DatabaseFile represents the database export file
type DatabaseFile struct {
	Filename string      `json:"filename"`
	Contents interface{} `json:"contents"` // Full JSON contents for the db
}

// BookFile represents an individual rendered book file in the export
type BookFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ExportOptions configures what data to export
type ExportOptions struct {
	// SearchTerm restricts the export to books matching a title/author
	// substring search. Empty exports the whole collection.
	SearchTerm string `json:"search_term,omitempty"`

	// BookFormat specifies the format to use when rendering books.
	// If nil, defaults to formats.PlainText.
	BookFormat *formats.BookFormat `json:"-"`
}
