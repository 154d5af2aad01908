// Package testutil provides a shared library fixture and assertion
// helpers for tests across the repository.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/booklib/booklib"
)

// ShelfData provides typed access to the fixture books. The fixture
// covers the interesting shapes: read and unread books, an empty genre,
// an empty year, and a duplicate title differing only in case.
type ShelfData struct {
	Dune      booklib.Book // read, Sci-Fi
	Hobbit    booklib.Book // unread, Fantasy
	Emma      booklib.Book // read, no genre
	Solaris   booklib.Book // unread, Sci-Fi, no year
	DuneLower booklib.Book // "dune", duplicate title in lower case

	All []booklib.Book
}

// LoadShelf writes the fixture collection to a temp data file and returns
// a library opened on it plus typed access to the books.
func LoadShelf(t *testing.T) (*booklib.Library, *ShelfData) {
	t.Helper()

	data := &ShelfData{
		Dune:      booklib.Book{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Sci-Fi", Read: true, AddedDate: "2024-01-05"},
		Hobbit:    booklib.Book{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: "1937", Genre: "Fantasy", Read: false, AddedDate: "2024-01-06"},
		Emma:      booklib.Book{Title: "Emma", Author: "Jane Austen", Year: "1815", Genre: "", Read: true, AddedDate: "2024-02-10"},
		Solaris:   booklib.Book{Title: "Solaris", Author: "Stanislaw Lem", Year: "", Genre: "Sci-Fi", Read: false, AddedDate: "2024-03-01"},
		DuneLower: booklib.Book{Title: "dune", Author: "Someone Else", Year: "2001", Genre: "Parody", Read: false, AddedDate: "2024-03-02"},
	}
	data.All = []booklib.Book{data.Dune, data.Hobbit, data.Emma, data.Solaris, data.DuneLower}

	filePath := filepath.Join(t.TempDir(), "books_data.json")
	raw, err := json.MarshalIndent(data.All, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lib := booklib.Open(filePath)
	t.Cleanup(func() { _ = lib.Close() })

	return lib, data
}

// AssertBookCount checks that the slice contains the expected number of books
func AssertBookCount(t *testing.T, books []booklib.Book, expected int, context ...string) {
	t.Helper()
	if len(books) != expected {
		ctx := ""
		if len(context) > 0 {
			ctx = " " + context[0]
		}
		t.Errorf("expected %d books%s, got %d", expected, ctx, len(books))
	}
}

// AssertTitleExists verifies that a book with the given title (exact
// match) exists in the slice
func AssertTitleExists(t *testing.T, books []booklib.Book, title string) {
	t.Helper()
	for _, book := range books {
		if book.Title == title {
			return
		}
	}
	t.Errorf("book %q not found in results", title)
}

// AssertTitleNotExists verifies that no book with the given title (exact
// match) exists in the slice
func AssertTitleNotExists(t *testing.T, books []booklib.Book, title string) {
	t.Helper()
	for _, book := range books {
		if book.Title == title {
			t.Errorf("book %q should not be in results", title)
			return
		}
	}
}
