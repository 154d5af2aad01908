package booklib

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// LoadStatus reports how a load resolved. Every outcome yields a usable
// (possibly empty) collection; callers that don't care can ignore it.
type LoadStatus int

const (
	// LoadOK means the file existed and parsed.
	LoadOK LoadStatus = iota

	// LoadFresh means the file was missing or empty, a normal first run.
	LoadFresh

	// LoadCorrupt means the file existed but did not parse as a book
	// array. The collection starts empty and the next save overwrites
	// the bad content.
	LoadCorrupt
)

// Store reads and writes the entire collection in one shot.
type Store interface {
	Load() ([]Book, LoadStatus)
	Save(books []Book) error
	Close() error
}

// jsonFileStore implements Store against a single JSON file containing an
// indented array of books. An advisory file lock guards cross-process
// access; in-process callers are serialized by the Library's lock manager.
type jsonFileStore struct {
	filePath string
	fileLock *flock.Flock
}

// NewJSONFileStore creates a store for the given file path. The file is
// not touched until the first Load or Save.
func NewJSONFileStore(filePath string) Store {
	return &jsonFileStore{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Load reads the collection from disk. A missing file, an empty file, or
// content that fails to parse all yield an empty collection; no error is
// surfaced. The status tag records which case occurred.
func (s *jsonFileStore) Load() ([]Book, LoadStatus) {
	unlock, err := s.acquireLock()
	if err != nil {
		// Treat an unobtainable lock like an unreadable file.
		return []Book{}, LoadFresh
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return []Book{}, LoadFresh
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return []Book{}, LoadFresh
	}
	if len(data) == 0 {
		return []Book{}, LoadFresh
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return []Book{}, LoadCorrupt
	}
	if books == nil {
		books = []Book{}
	}
	return books, LoadOK
}

// Save replaces the file contents with the full collection. The write
// goes to a temp file first and is renamed into place, so a crash mid-save
// never leaves a truncated catalog behind.
func (s *jsonFileStore) Save(books []Book) error {
	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	if books == nil {
		books = []Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal books: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Close removes the lock file.
func (s *jsonFileStore) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

// acquireLock takes the advisory file lock, retrying briefly. The caller
// must invoke the returned function to release it.
func (s *jsonFileStore) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
