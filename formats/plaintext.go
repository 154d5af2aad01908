package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/booklib/booklib"
)

// PlainText format implementation
// Rendering: title on the first line, author on the second, blank line,
// then one "Key: value" line per remaining field. Optional empty fields
// are omitted.
var PlainText = &BookFormat{
	Name:      "plaintext",
	Extension: ".txt",
	Render: func(book booklib.Book) (string, error) {
		var result strings.Builder

		result.WriteString(book.Title)
		result.WriteString("\n")
		result.WriteString("by ")
		result.WriteString(book.Author)
		result.WriteString("\n\n")

		if book.Year != "" {
			result.WriteString("Year: ")
			result.WriteString(book.Year)
			result.WriteString("\n")
		}
		if book.Genre != "" {
			result.WriteString("Genre: ")
			result.WriteString(book.Genre)
			result.WriteString("\n")
		}
		result.WriteString("Status: ")
		result.WriteString(readLabel(book.Read))
		result.WriteString("\n")
		result.WriteString("Added: ")
		result.WriteString(book.AddedDate)
		result.WriteString("\n")

		return result.String(), nil
	},
}

func init() {
	if err := Register(PlainText); err != nil {
		panic(fmt.Sprintf("failed to register PlainText format: %v", err))
	}
}
