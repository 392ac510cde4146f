// Package catalog holds the fixed set of books the application browses and
// the category labels that partition them.
//
// The catalog is compiled into the binary as a TOML document and never
// changes while the process runs. Accessors hand out copies, so nothing
// outside this package can mutate it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// CategoryAll is the sentinel category that matches every book.
const CategoryAll = "All"

// ErrInvalidCatalog is wrapped by every validation failure reported by Parse.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed books.toml
var defaultDocument []byte

var defaultCatalog = mustParse(defaultDocument)

// Book is a single catalog record.
type Book struct {
	ID          int    `toml:"id"`
	Title       string `toml:"title"`
	Author      string `toml:"author"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

// Catalog is an ordered, immutable set of books and category labels.
type Catalog struct {
	books      []Book
	categories []string
	byID       map[int]int
}

type document struct {
	Categories []string `toml:"categories"`
	Books      []Book   `toml:"books"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Parse decodes and validates a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		books:      doc.Books,
		categories: doc.Categories,
		byID:       make(map[int]int, len(doc.Books)),
	}
	for i, b := range doc.Books {
		c.byID[b.ID] = i
	}
	return c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

func validate(doc document) error {
	if len(doc.Categories) == 0 || doc.Categories[0] != CategoryAll {
		return fmt.Errorf("%w: categories must start with %q", ErrInvalidCatalog, CategoryAll)
	}

	known := make(map[string]bool, len(doc.Categories))
	for _, label := range doc.Categories {
		if label == "" {
			return fmt.Errorf("%w: empty category label", ErrInvalidCatalog)
		}
		if known[label] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, label)
		}
		known[label] = true
	}

	seen := make(map[int]bool, len(doc.Books))
	for _, b := range doc.Books {
		switch {
		case b.ID <= 0:
			return fmt.Errorf("%w: book id %d must be positive", ErrInvalidCatalog, b.ID)
		case seen[b.ID]:
			return fmt.Errorf("%w: duplicate book id %d", ErrInvalidCatalog, b.ID)
		case b.Title == "":
			return fmt.Errorf("%w: book %d has no title", ErrInvalidCatalog, b.ID)
		case b.Author == "":
			return fmt.Errorf("%w: book %d has no author", ErrInvalidCatalog, b.ID)
		case b.Category == CategoryAll || !known[b.Category]:
			return fmt.Errorf("%w: book %d has unknown category %q", ErrInvalidCatalog, b.ID, b.Category)
		}
		seen[b.ID] = true
	}

	return nil
}

// Books returns every book in catalog order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Categories returns the category labels in display order, "All" first.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Book looks up a book by id.
func (c *Catalog) Book(id int) (Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// Contains reports whether b is a member of the catalog. A book with a
// known id but different fields is not a member.
func (c *Catalog) Contains(b Book) bool {
	found, ok := c.Book(b.ID)
	return ok && found == b
}

// CycleCategory returns the label delta steps away from current, wrapping at
// both ends. An unknown current label restarts at "All".
func (c *Catalog) CycleCategory(current string, delta int) string {
	n := len(c.categories)
	idx := -1
	for i, label := range c.categories {
		if label == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CategoryAll
	}

	next := ((idx+delta)%n + n) % n
	return c.categories[next]
}
