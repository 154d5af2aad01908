package formats

import (
	"fmt"

	"github.com/arthur-debert/booklib/booklib"
	"gopkg.in/yaml.v3"
)

// YAML format implementation
// Rendering: the book record marshaled as a YAML document, same field
// names as the JSON store.
var YAML = &BookFormat{
	Name:      "yaml",
	Extension: ".yaml",
	Render: func(book booklib.Book) (string, error) {
		data, err := yaml.Marshal(book)
		if err != nil {
			return "", fmt.Errorf("failed to marshal book: %w", err)
		}
		return string(data), nil
	},
}

func init() {
	if err := Register(YAML); err != nil {
		panic(fmt.Sprintf("failed to register YAML format: %v", err))
	}
}
