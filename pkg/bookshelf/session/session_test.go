package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
)

func TestNewSession(t *testing.T) {
	s := session.New(catalog.Default())

	assert.Equal(t, session.BookList{}, s.Screen())
	assert.Empty(t, s.Query())
	assert.Equal(t, catalog.CategoryAll, s.Category())
	assert.Len(t, s.Visible(), 4)
}

func TestSelectAndBackRoundTrip(t *testing.T) {
	s := session.New(catalog.Default())
	s.SetQuery("brave")
	s.SetCategory("Fiction")

	visible := s.Visible()
	require.Len(t, visible, 1)

	require.True(t, s.Select(visible[0]))
	assert.Equal(t, session.BookDetail{Book: visible[0]}, s.Screen())

	require.True(t, s.Back())
	assert.Equal(t, session.BookList{}, s.Screen())

	assert.Equal(t, "brave", s.Query())
	assert.Equal(t, "Fiction", s.Category())
	assert.Equal(t, visible, s.Visible())
}

func TestSelectRejectsUnreachableTransitions(t *testing.T) {
	s := session.New(catalog.Default())
	books := s.Visible()

	assert.False(t, s.Back(), "back from the list")
	assert.Equal(t, session.BookList{}, s.Screen())

	forged := catalog.Book{ID: 99, Title: "Dune", Author: "Frank Herbert", Category: "Fiction"}
	assert.False(t, s.Select(forged), "select a book outside the catalog")
	assert.Equal(t, session.BookList{}, s.Screen())

	require.True(t, s.Select(books[0]))
	assert.False(t, s.Select(books[1]), "select from the detail screen")
	assert.Equal(t, session.BookDetail{Book: books[0]}, s.Screen())
}

func TestDetailBookIsAlwaysCatalogMember(t *testing.T) {
	c := catalog.Default()
	s := session.New(c)

	for _, category := range s.Categories() {
		s.SetCategory(category)
		for _, b := range s.Visible() {
			require.True(t, s.Select(b))
			detail, ok := s.Screen().(session.BookDetail)
			require.True(t, ok)
			assert.True(t, c.Contains(detail.Book))
			require.True(t, s.Back())
		}
	}
}

func TestQueryAndCategoryUpdateVisible(t *testing.T) {
	s := session.New(catalog.Default())

	s.SetCategory("Programming")
	assert.Equal(t, "Clean Code", s.Visible()[0].Title)

	s.SetQuery("orwell")
	assert.Empty(t, s.Visible())

	s.SetCategory(catalog.CategoryAll)
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "1984", s.Visible()[0].Title)
}

func TestCycleCategory(t *testing.T) {
	s := session.New(catalog.Default())

	assert.Equal(t, "Fiction", s.CycleCategory(1))
	assert.Equal(t, "Non-Fiction", s.CycleCategory(1))
	assert.Equal(t, "Fiction", s.CycleCategory(-1))
	assert.Equal(t, "Programming", s.CycleCategory(-2))
	assert.Equal(t, "Programming", s.Category())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "book_list", session.BookList{}.String())
	assert.Equal(t, "book_detail", session.BookDetail{}.String())
}

func Example() {
	s := session.New(catalog.Default())

	s.SetCategory("Non-Fiction")
	book := s.Visible()[0]

	s.Select(book)
	if d, ok := s.Screen().(session.BookDetail); ok {
		fmt.Printf("Detail: %s by %s\n", d.Book.Title, d.Book.Author)
	}

	s.Back()
	fmt.Printf("Back on %s, category %s\n", s.Screen(), s.Category())

	// Output:
	// Detail: Sapiens by Yuval Noah Harari
	// Back on book_list, category Non-Fiction
}
