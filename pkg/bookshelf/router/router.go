package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
)

// ListState is the query and category surface a list screen drives directly.
// *session.Session implements it.
type ListState interface {
	Query() string
	Category() string
	Categories() []string
	Visible() []catalog.Book
	SetQuery(q string)
	SetCategory(label string)
	CycleCategory(delta int) string
}

// BookListAction is what the user did to leave the list screen.
type BookListAction int

const (
	BookListActionSelected BookListAction = iota // User picked a book
	BookListActionExit                           // User left the application
)

// BookDetailAction is what the user did to leave the detail screen.
type BookDetailAction int

const (
	BookDetailActionBack BookDetailAction = iota // User went back to the list
	BookDetailActionExit                         // User left the application
)

// BookListResume is the list position restored on back navigation.
type BookListResume struct {
	SelectedIndex     int
	VisibleStartIndex int
}

// BookListInput is what the list screen needs to render.
type BookListInput struct {
	State  ListState
	Resume *BookListResume // nil on first visit
}

// BookListResult is what the list screen returns.
type BookListResult struct {
	Action   BookListAction
	Selected *catalog.Book
	Resume   *BookListResume
}

// BookDetailInput is what the detail screen needs to render.
type BookDetailInput struct {
	Book catalog.Book
}

// BookDetailResult is what the detail screen returns.
type BookDetailResult struct {
	Action BookDetailAction
}

// Screens is implemented by a presentation layer. Each method blocks until
// the user leaves the screen.
type Screens interface {
	BookList(in BookListInput) (BookListResult, error)
	BookDetail(in BookDetailInput) (BookDetailResult, error)
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// Router moves a session between screens.
type Router struct {
	session *session.Session
	screens Screens
	stack   *Stack
	logger  *slog.Logger
	resume  *BookListResume
}

// New creates a Router for sess that renders with screens.
func New(sess *session.Session, screens Screens, opts ...Option) *Router {
	r := &Router{
		session: sess,
		screens: screens,
		stack:   NewStack(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run shows screens until the user exits, a screen fails, or ctx is
// cancelled. Cancellation is checked between screens and is not an error.
func (r *Router) Run(ctx context.Context) error {
	if r.screens == nil {
		return fmt.Errorf("router: no screens set")
	}

	for {
		if ctx.Err() != nil {
			r.logger.Debug("Router stopped", "reason", ctx.Err())
			return nil
		}

		done, err := r.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (r *Router) step() (bool, error) {
	current := r.session.Screen()

	switch screen := current.(type) {
	case session.BookList:
		res, err := r.screens.BookList(BookListInput{State: r.session, Resume: r.resume})
		if err != nil {
			return false, fmt.Errorf("router: screen %s: %w", current, err)
		}
		r.resume = nil
		return r.fromList(current, res), nil

	case session.BookDetail:
		res, err := r.screens.BookDetail(BookDetailInput{Book: screen.Book})
		if err != nil {
			return false, fmt.Errorf("router: screen %s: %w", current, err)
		}
		return r.fromDetail(current, res), nil
	}

	return false, fmt.Errorf("router: unknown screen %v", current)
}

func (r *Router) fromList(from session.Screen, res BookListResult) bool {
	switch res.Action {
	case BookListActionSelected:
		if res.Selected == nil || !r.session.Select(*res.Selected) {
			r.logger.Warn("Ignoring selection outside the catalog", "from", from.String())
			r.resume = res.Resume
			return false
		}
		r.stack.Push(from.String(), res.Resume)
		r.logger.Debug("Navigated", "from", from.String(), "to", r.session.Screen().String(), "book_id", res.Selected.ID)
		return false
	}

	r.logger.Debug("Exit requested", "from", from.String())
	return true
}

func (r *Router) fromDetail(from session.Screen, res BookDetailResult) bool {
	if res.Action != BookDetailActionBack {
		r.logger.Debug("Exit requested", "from", from.String())
		return true
	}

	r.session.Back()
	if entry := r.stack.Pop(); entry != nil {
		r.resume = entry.Resume
	}
	r.logger.Debug("Navigated", "from", from.String(), "to", r.session.Screen().String())
	return false
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}
