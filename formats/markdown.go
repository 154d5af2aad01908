package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/booklib/booklib"
)

// Markdown format implementation
// Rendering: # Title header, italic author byline, then a bullet list of
// the remaining fields.
var Markdown = &BookFormat{
	Name:      "markdown",
	Extension: ".md",
	Render: func(book booklib.Book) (string, error) {
		var result strings.Builder

		result.WriteString("# ")
		result.WriteString(book.Title)
		result.WriteString("\n\n")
		result.WriteString("*by ")
		result.WriteString(book.Author)
		result.WriteString("*\n\n")

		if book.Year != "" {
			fmt.Fprintf(&result, "- Year: %s\n", book.Year)
		}
		if book.Genre != "" {
			fmt.Fprintf(&result, "- Genre: %s\n", book.Genre)
		}
		fmt.Fprintf(&result, "- Status: %s\n", readLabel(book.Read))
		fmt.Fprintf(&result, "- Added: %s\n", book.AddedDate)

		return result.String(), nil
	},
}

func init() {
	if err := Register(Markdown); err != nil {
		panic(fmt.Sprintf("failed to register Markdown format: %v", err))
	}
}
