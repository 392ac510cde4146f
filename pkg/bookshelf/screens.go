package bookshelf

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
)

// Settings tune how the SDL screens look and respond.
type Settings struct {
	Title      string
	Margins    internal.Padding
	InputDelay time.Duration
}

// DefaultSettings returns margins scaled to the current window. Call after Init.
func DefaultSettings() Settings {
	return Settings{
		Title:      "Books",
		Margins:    internal.UniformPadding(20).Scaled(internal.GetScaleFactor()),
		InputDelay: constants.DefaultInputDelay,
	}
}

func logger() *slog.Logger {
	return logging.GetInternalLogger()
}

// Screens renders the router's screens with SDL. Init must have succeeded.
type Screens struct {
	settings Settings
}

var _ router.Screens = (*Screens)(nil)

// NewScreens creates the SDL screens with DefaultSettings.
func NewScreens() *Screens {
	return &Screens{settings: DefaultSettings()}
}

// NewScreensWithSettings creates the SDL screens with custom settings.
func NewScreensWithSettings(settings Settings) *Screens {
	return &Screens{settings: settings}
}

// BookList shows the searchable list until the user opens a book or quits.
func (s *Screens) BookList(in router.BookListInput) (router.BookListResult, error) {
	if internal.GetWindow() == nil {
		return router.BookListResult{}, NewInfrastructureError("book_list", errNotInitialized)
	}
	return newBookListController(s.settings, in).run()
}

// BookDetail shows one book until the user goes back or quits.
func (s *Screens) BookDetail(in router.BookDetailInput) (router.BookDetailResult, error) {
	if internal.GetWindow() == nil {
		return router.BookDetailResult{}, NewInfrastructureError("book_detail", errNotInitialized)
	}
	return newBookDetailState(s.settings, in).run(), nil
}
