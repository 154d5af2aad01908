package booklib

import (
	"strings"
)

// Library owns the in-memory book collection. It is initialized from the
// store once at construction and writes the whole collection back after
// every mutation. Reads never touch disk.
type Library struct {
	store Store
	locks *lockManager
	books []Book

	// loadStatus records how the initial load resolved. Corrupt or
	// missing files start the library empty rather than failing.
	loadStatus LoadStatus
}

// NewLibrary creates a Library backed by the given store.
func NewLibrary(store Store) *Library {
	books, status := store.Load()
	return &Library{
		store:      store,
		locks:      newLockManager(),
		books:      books,
		loadStatus: status,
	}
}

// Open is a convenience constructor for the common JSON file case.
func Open(filePath string) *Library {
	return NewLibrary(NewJSONFileStore(filePath))
}

// Close releases store resources.
func (l *Library) Close() error {
	return l.store.Close()
}

// LoadStatus reports how the initial load resolved.
func (l *Library) LoadStatus() LoadStatus {
	return l.loadStatus
}

// Add appends a new book to the collection and persists it. The added
// date is assigned here and never changes afterwards. No field validation
// happens at this layer; callers own required-field checks.
func (l *Library) Add(title, author, year, genre string, read bool) error {
	return l.locks.execute(writeOperation, func() error {
		book := Book{
			Title:     title,
			Author:    author,
			Year:      year,
			Genre:     genre,
			Read:      read,
			AddedDate: today(),
		}

		l.books = append(l.books, book)

		if err := l.store.Save(l.books); err != nil {
			// Roll back the append so memory matches disk.
			l.books = l.books[:len(l.books)-1]
			return err
		}
		return nil
	})
}

// Delete removes every book whose title matches case-insensitively and
// persists the remainder. A title with no matches is a silent no-op, not
// an error.
func (l *Library) Delete(title string) error {
	return l.locks.execute(writeOperation, func() error {
		want := strings.ToLower(title)
		kept := make([]Book, 0, len(l.books))
		for _, book := range l.books {
			if strings.ToLower(book.Title) != want {
				kept = append(kept, book)
			}
		}

		prev := l.books
		l.books = kept
		if err := l.store.Save(l.books); err != nil {
			l.books = prev
			return err
		}
		return nil
	})
}

// Update merges the patch into the first book whose title matches
// originalTitle case-insensitively, persists, and reports true. When no
// book matches it reports false and nothing is written. The match is on
// the current title, so a caller renaming a book must pass the pre-update
// title.
func (l *Library) Update(originalTitle string, patch Patch) (bool, error) {
	found := false
	err := l.locks.execute(writeOperation, func() error {
		want := strings.ToLower(originalTitle)
		for i := range l.books {
			if strings.ToLower(l.books[i].Title) != want {
				continue
			}

			prev := l.books[i]
			applyPatch(&l.books[i], patch)
			if err := l.store.Save(l.books); err != nil {
				l.books[i] = prev
				return err
			}
			found = true
			return nil
		}
		return nil
	})
	return found, err
}

// Search returns the books whose title or author contains term as a
// case-insensitive substring, in collection order. An empty term returns
// the whole collection. The result is a copy; mutating it does not affect
// the library.
func (l *Library) Search(term string) []Book {
	var result []Book
	_ = l.locks.execute(readOperation, func() error {
		if term == "" {
			result = make([]Book, len(l.books))
			copy(result, l.books)
			return nil
		}

		want := strings.ToLower(term)
		result = []Book{}
		for _, book := range l.books {
			if strings.Contains(strings.ToLower(book.Title), want) ||
				strings.Contains(strings.ToLower(book.Author), want) {
				result = append(result, book)
			}
		}
		return nil
	})
	return result
}

// List returns the full collection in insertion order.
func (l *Library) List() []Book {
	return l.Search("")
}

// Stats computes reading statistics over the collection. CompletionRate
// is a percentage, unrounded; an empty collection reports 0.
func (l *Library) Stats() Stats {
	var stats Stats
	_ = l.locks.execute(readOperation, func() error {
		stats.Total = len(l.books)
		for _, book := range l.books {
			if book.Read {
				stats.Read++
			}
		}
		stats.Unread = stats.Total - stats.Read
		if stats.Total > 0 {
			stats.CompletionRate = float64(stats.Read) / float64(stats.Total) * 100
		}
		return nil
	})
	return stats
}

// GenreDistribution counts books per genre. Genres are grouped by exact
// string, case-sensitive and untrimmed; books with no genre land in the
// empty-string bucket.
func (l *Library) GenreDistribution() map[string]int {
	genres := make(map[string]int)
	_ = l.locks.execute(readOperation, func() error {
		for _, book := range l.books {
			genres[book.Genre]++
		}
		return nil
	})
	return genres
}

// applyPatch overwrites book fields present in the patch.
func applyPatch(book *Book, patch Patch) {
	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Year != nil {
		book.Year = *patch.Year
	}
	if patch.Genre != nil {
		book.Genre = *patch.Genre
	}
	if patch.Read != nil {
		book.Read = *patch.Read
	}
}
