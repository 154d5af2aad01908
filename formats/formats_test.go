package formats

import (
	"strings"
	"testing"

	"github.com/arthur-debert/booklib/booklib"
	"gopkg.in/yaml.v3"
)

var sampleBook = booklib.Book{
	Title:     "Dune",
	Author:    "Frank Herbert",
	Year:      "1965",
	Genre:     "Sci-Fi",
	Read:      true,
	AddedDate: "2024-01-05",
}

func TestGet(t *testing.T) {
	for _, name := range []string{"plaintext", "markdown", "yaml"} {
		t.Run(name, func(t *testing.T) {
			format, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", name, err)
			}
			if format.Name != name {
				t.Errorf("format name = %q, want %q", format.Name, name)
			}
			if !strings.HasPrefix(format.Extension, ".") {
				t.Errorf("extension %q missing dot", format.Extension)
			}
		})
	}
}

func TestGetUnknownFormat(t *testing.T) {
	if _, err := Get("docx"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestList(t *testing.T) {
	names := List()
	want := map[string]bool{"plaintext": true, "markdown": true, "yaml": true}
	for _, name := range names {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("List() is missing formats: %v", want)
	}
}

func TestRenderContainsCoreFields(t *testing.T) {
	for _, name := range []string{"plaintext", "markdown", "yaml"} {
		t.Run(name, func(t *testing.T) {
			format, err := Get(name)
			if err != nil {
				t.Fatal(err)
			}

			content, err := format.Render(sampleBook)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}

			for _, want := range []string{"Dune", "Frank Herbert", "1965"} {
				if !strings.Contains(content, want) {
					t.Errorf("%s output missing %q:\n%s", name, want, content)
				}
			}
		})
	}
}

func TestPlainTextOmitsEmptyOptionalFields(t *testing.T) {
	book := sampleBook
	book.Year = ""
	book.Genre = ""

	content, err := PlainText.Render(book)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(content, "Year:") || strings.Contains(content, "Genre:") {
		t.Errorf("empty optional fields should be omitted:\n%s", content)
	}
	if !strings.Contains(content, "Status: Read") {
		t.Errorf("status line missing:\n%s", content)
	}
}

func TestMarkdownHeader(t *testing.T) {
	content, err := Markdown.Render(sampleBook)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(content, "# Dune\n") {
		t.Errorf("markdown output should start with the title header:\n%s", content)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	content, err := YAML.Render(sampleBook)
	if err != nil {
		t.Fatal(err)
	}

	var decoded booklib.Book
	if err := yaml.Unmarshal([]byte(content), &decoded); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if decoded != sampleBook {
		t.Errorf("yaml round trip mismatch:\ngot  %+v\nwant %+v", decoded, sampleBook)
	}
}

func TestRegisterRejectsBadNames(t *testing.T) {
	cases := []string{"", "UPPER", "has space", "dot.name"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			err := Register(&BookFormat{Name: name, Extension: ".x"})
			if err == nil {
				t.Errorf("Register(%q) should fail", name)
			}
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	if err := Register(&BookFormat{Name: "plaintext", Extension: ".txt"}); err == nil {
		t.Error("duplicate registration should fail")
	}
}
