package booklib

import (
	"path/filepath"
	"testing"
)

// TestReadingLifecycle walks the catalog through the common flow:
// add a book, check stats, mark it read, check stats again.
func TestReadingLifecycle(t *testing.T) {
	lib, _ := newTestLibrary(t)

	if err := lib.Add("Dune", "Herbert", "1965", "Sci-Fi", false); err != nil {
		t.Fatal(err)
	}

	stats := lib.Stats()
	if stats.Total != 1 || stats.Read != 0 || stats.Unread != 1 || stats.CompletionRate != 0 {
		t.Fatalf("unexpected stats after add: %+v", stats)
	}

	read := true
	found, err := lib.Update("Dune", Patch{Read: &read})
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("update should find the book")
	}

	stats = lib.Stats()
	if stats.Read != 1 {
		t.Errorf("read = %d, want 1", stats.Read)
	}
	if stats.CompletionRate != 100.0 {
		t.Errorf("completion rate = %v, want 100.0", stats.CompletionRate)
	}
}

// TestPersistenceAcrossReopen verifies that a second library instance on
// the same file sees everything the first one wrote.
func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books_data.json")

	lib := Open(path)
	if err := lib.Add("Dune", "Frank Herbert", "1965", "Sci-Fi", true); err != nil {
		t.Fatal(err)
	}
	if err := lib.Add("Emma", "Jane Austen", "1815", "", false); err != nil {
		t.Fatal(err)
	}
	if err := lib.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := Open(path)
	defer func() { _ = reopened.Close() }()

	if reopened.LoadStatus() != LoadOK {
		t.Errorf("load status = %v, want LoadOK", reopened.LoadStatus())
	}

	books := reopened.List()
	if len(books) != 2 {
		t.Fatalf("expected 2 books after reopen, got %d", len(books))
	}
	if books[0].Title != "Dune" || books[1].Title != "Emma" {
		t.Errorf("order or content lost across reopen: %+v", books)
	}
	if !books[0].Read || books[1].Read {
		t.Error("read flags lost across reopen")
	}
	if books[1].Genre != "" {
		t.Error("empty genre not preserved")
	}
}

// TestCaseInsensitiveDeleteSweep covers the duplicate-title scenario:
// two books whose titles differ only in case are both removed by a
// single delete.
func TestCaseInsensitiveDeleteSweep(t *testing.T) {
	lib, _ := newTestLibrary(t)

	if err := lib.Add("A", "X", "", "", false); err != nil {
		t.Fatal(err)
	}
	if err := lib.Add("a", "Y", "", "", false); err != nil {
		t.Fatal(err)
	}

	if err := lib.Delete("A"); err != nil {
		t.Fatal(err)
	}

	if got := len(lib.List()); got != 0 {
		t.Errorf("expected empty collection, got %d books", got)
	}
}
