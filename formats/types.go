// Package formats defines how a book is rendered into a standalone
// document for export. Formats register themselves at init time and are
// looked up by name.
package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/booklib/booklib"
)

// BookFormat defines how books are rendered for export
type BookFormat struct {
	// Name is the format identifier (alphanumeric, dashes, underscores, lowercase)
	Name string

	// Extension is the file extension including the dot (e.g., ".txt", ".md")
	Extension string

	// Render converts a book into the formatted document string
	Render func(book booklib.Book) (string, error)
}

// registry holds all available book formats
var registry = make(map[string]*BookFormat)

// Register adds a new book format to the registry
func Register(format *BookFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}

	// Normalize extension
	if !strings.HasPrefix(format.Extension, ".") {
		format.Extension = "." + format.Extension
	}

	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}

	registry[format.Name] = format
	return nil
}

// Get returns a book format by name
func Get(name string) (*BookFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return format, nil
}

// List returns all registered format names
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// isValidFormatName checks if a format name is valid
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// readLabel renders the read flag the way every format displays it.
func readLabel(read bool) string {
	if read {
		return "Read"
	}
	return "Unread"
}
