// Package session holds the state of one browsing session: the search query,
// the selected category and the screen being shown.
//
// A Session is driven by four intent events, SetQuery, SetCategory, Select and
// Back, each of which completes before the next is applied. It is not safe
// for concurrent use; the presentation layer owns it and feeds it events from
// a single goroutine.
package session

import "github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"

// Session is the explicit UI state for one run of the application.
type Session struct {
	catalog  *catalog.Catalog
	query    string
	category string
	screen   Screen
}

// New starts a session on the book list with an empty query and the "All"
// category.
func New(c *catalog.Catalog) *Session {
	return &Session{
		catalog:  c,
		category: catalog.CategoryAll,
		screen:   BookList{},
	}
}

// Catalog returns the catalog the session browses.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Query returns the current search text.
func (s *Session) Query() string {
	return s.query
}

// Category returns the selected category label.
func (s *Session) Category() string {
	return s.category
}

// Categories returns every category label in display order.
func (s *Session) Categories() []string {
	return s.catalog.Categories()
}

// Screen returns the live screen value.
func (s *Session) Screen() Screen {
	return s.screen
}

// Visible returns the catalog books matching the current query and category.
func (s *Session) Visible() []catalog.Book {
	return catalog.Filter(s.catalog.Books(), s.query, s.category)
}

// SetQuery replaces the search text.
func (s *Session) SetQuery(q string) {
	s.query = q
}

// SetCategory replaces the selected category. Labels outside the catalog's
// category set are kept as given and simply match no books.
func (s *Session) SetCategory(label string) {
	s.category = label
}

// CycleCategory moves the selected category delta steps through the
// category list, wrapping at both ends.
func (s *Session) CycleCategory(delta int) string {
	s.category = s.catalog.CycleCategory(s.category, delta)
	return s.category
}

// Select moves from the list to the detail screen for b. It reports false and
// leaves the state untouched when the session is not on the list or b is not
// a catalog book.
func (s *Session) Select(b catalog.Book) bool {
	if _, onList := s.screen.(BookList); !onList {
		return false
	}
	if !s.catalog.Contains(b) {
		return false
	}

	s.screen = BookDetail{Book: b}
	return true
}

// Back returns from the detail screen to the list. It reports false when the
// session is already on the list.
func (s *Session) Back() bool {
	if _, onDetail := s.screen.(BookDetail); !onDetail {
		return false
	}

	s.screen = BookList{}
	return true
}
