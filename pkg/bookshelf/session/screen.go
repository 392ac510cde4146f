package session

import "github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"

// Screen is the view the session is currently showing. It is either
// BookList or BookDetail; no other implementations exist.
type Screen interface {
	screen()
	String() string
}

// BookList is the filtered list of books.
type BookList struct{}

// BookDetail shows a single catalog book.
type BookDetail struct {
	Book catalog.Book
}

func (BookList) screen()   {}
func (BookDetail) screen() {}

func (BookList) String() string { return "book_list" }

func (BookDetail) String() string { return "book_detail" }
