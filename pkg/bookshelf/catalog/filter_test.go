package catalog_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
)

func titles(books []catalog.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilter(t *testing.T) {
	books := catalog.Default().Books()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"everything", "", "All", []string{"1984", "Brave New World", "Sapiens", "Clean Code"}},
		{"author upper", "ORWELL", "All", []string{"1984"}},
		{"author lower", "orwell", "All", []string{"1984"}},
		{"title match", "clean", "All", []string{"Clean Code"}},
		{"fiction only", "", "Fiction", []string{"1984", "Brave New World"}},
		{"fiction with a", "a", "Fiction", []string{"Brave New World"}},
		{"fiction with o", "o", "Fiction", []string{"1984", "Brave New World"}},
		{"query and category disagree", "sapiens", "Fiction", []string{}},
		{"no match", "tolkien", "All", []string{}},
		{"unknown category", "", "Poetry", []string{}},
		{"digits in title", "198", "All", []string{"1984"}},
		{"spans words", "noah har", "Non-Fiction", []string{"Sapiens"}},
		{"category is case sensitive", "", "fiction", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(catalog.Filter(books, tt.query, tt.category))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.category, diff)
			}
		})
	}
}

func TestFilterIsOrderPreservingSubsequence(t *testing.T) {
	books := catalog.Default().Books()
	queries := []string{"", "a", "E", "code", "x", "  ", "ri"}

	for _, category := range catalog.Default().Categories() {
		for _, q := range queries {
			got := catalog.Filter(books, q, category)

			// Every output element must appear in the input after the previous one.
			next := 0
			for _, b := range got {
				for next < len(books) && books[next] != b {
					next++
				}
				if !assert.Less(t, next, len(books), "%q/%q: %s out of order", q, category, b.Title) {
					break
				}
				next++
			}
		}
	}
}

func TestFilterCaseInsensitiveUnicode(t *testing.T) {
	books := []catalog.Book{
		{ID: 1, Title: "Straße", Author: "Ünal", Category: "Fiction"},
	}

	assert.Len(t, catalog.Filter(books, "STRASSE", "All"), 1)
	assert.Len(t, catalog.Filter(books, "ünal", "All"), 1)
}

func TestFilterEmptyInput(t *testing.T) {
	got := catalog.Filter(nil, "a", "All")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	books := catalog.Default().Books()
	before := catalog.Default().Books()

	_ = catalog.Filter(books, "a", "Fiction")

	assert.Equal(t, before, books)
}

func ExampleFilter() {
	books := catalog.Default().Books()

	for _, b := range catalog.Filter(books, "o", "Fiction") {
		fmt.Printf("%s by %s\n", b.Title, b.Author)
	}
	// Output:
	// 1984 by George Orwell
	// Brave New World by Aldous Huxley
}
