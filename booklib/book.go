// Package booklib provides a small personal library catalog backed by a
// single JSON file. The whole collection is held in memory and rewritten
// to disk after every mutation.
package booklib

import "time"

// Book is a single catalog record. The JSON field names are the on-disk
// format and must not change.
type Book struct {
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	Year      string `json:"year" yaml:"year"`
	Genre     string `json:"genre" yaml:"genre"`
	Read      bool   `json:"read" yaml:"read"`
	AddedDate string `json:"added_date" yaml:"added_date"`
}

// Patch describes a partial update to a book. Nil fields are left
// unchanged. AddedDate is deliberately absent: it is assigned once at
// creation and never modified.
type Patch struct {
	Title  *string
	Author *string
	Year   *string
	Genre  *string
	Read   *bool
}

// Stats summarizes reading progress over the collection.
type Stats struct {
	Total          int
	Read           int
	Unread         int
	CompletionRate float64
}

// today returns the current calendar date in the on-disk format.
func today() string {
	return time.Now().Format("2006-01-02")
}
