package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
)

// scriptedScreens simulates a user: search, open the first hit, go back, exit.
type scriptedScreens struct {
	listVisits int
}

func (s *scriptedScreens) BookList(in router.BookListInput) (router.BookListResult, error) {
	s.listVisits++

	if s.listVisits == 1 {
		in.State.SetQuery("huxley")
		book := in.State.Visible()[0]
		fmt.Printf("List: query %q, selecting %s\n", in.State.Query(), book.Title)
		return router.BookListResult{
			Action:   router.BookListActionSelected,
			Selected: &book,
			Resume:   &router.BookListResume{SelectedIndex: 0},
		}, nil
	}

	fmt.Printf("List: restored to index %d, query still %q, exiting\n", in.Resume.SelectedIndex, in.State.Query())
	return router.BookListResult{Action: router.BookListActionExit}, nil
}

func (s *scriptedScreens) BookDetail(in router.BookDetailInput) (router.BookDetailResult, error) {
	fmt.Printf("Detail: %s, %s, going back\n", in.Book.Title, in.Book.Description)
	return router.BookDetailResult{Action: router.BookDetailActionBack}, nil
}

// Example demonstrates a list -> detail -> list round trip.
func Example() {
	sess := session.New(catalog.Default())
	r := router.New(sess, &scriptedScreens{})

	_ = r.Run(context.Background())

	// Output:
	// List: query "huxley", selecting Brave New World
	// Detail: Brave New World, Dystopian sci-fi, going back
	// List: restored to index 0, query still "huxley", exiting
}
