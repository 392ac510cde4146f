package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the books that belong to category and whose title or author
// contains query, ignoring case. Input order is preserved. An empty query
// matches every book and CategoryAll matches every category.
func Filter(books []Book, query, category string) []Book {
	// Casers are stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]Book, 0, len(books))
	for _, b := range books {
		if category != CategoryAll && b.Category != category {
			continue
		}
		if strings.Contains(fold.String(b.Title), needle) || strings.Contains(fold.String(b.Author), needle) {
			out = append(out, b)
		}
	}
	return out
}
