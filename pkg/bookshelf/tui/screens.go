package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
)

// Option configures Screens.
type Option func(*Screens)

// WithContext stops the running screen when ctx is cancelled. The screen
// then reports an exit.
func WithContext(ctx context.Context) Option {
	return func(s *Screens) {
		s.ctx = ctx
	}
}

// WithIO replaces the terminal with in and out.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Screens) {
		s.programOpts = append(s.programOpts, tea.WithInput(in), tea.WithOutput(out))
	}
}

// WithAltScreen runs every screen in the terminal's alternate buffer.
func WithAltScreen() Option {
	return func(s *Screens) {
		s.programOpts = append(s.programOpts, tea.WithAltScreen())
	}
}

// WithStyles overrides DefaultStyles.
func WithStyles(styles Styles) Option {
	return func(s *Screens) {
		s.styles = styles
	}
}

// WithLogger sets the logger for screen lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screens) {
		s.logger = logger
	}
}

// Screens renders each router screen as its own bubbletea program.
type Screens struct {
	ctx         context.Context
	programOpts []tea.ProgramOption
	styles      Styles
	logger      *slog.Logger
}

var _ router.Screens = (*Screens)(nil)

// NewScreens creates terminal screens.
func NewScreens(opts ...Option) *Screens {
	s := &Screens{
		ctx:    context.Background(),
		styles: DefaultStyles(""),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screens) run(name string, model tea.Model) (tea.Model, bool, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(s.ctx)}, s.programOpts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			s.logger.Debug("Screen stopped", "screen", name, "reason", s.ctx.Err())
			return final, true, nil
		}
		return nil, false, fmt.Errorf("tui: %s: %w", name, err)
	}
	return final, false, nil
}

func (s *Screens) BookList(in router.BookListInput) (router.BookListResult, error) {
	exit := router.BookListResult{Action: router.BookListActionExit}

	final, killed, err := s.run("book_list", NewListModel(in, s.styles))
	if err != nil || killed {
		return exit, err
	}

	m, ok := final.(ListModel)
	if !ok || m.Result() == nil {
		return exit, nil
	}
	return *m.Result(), nil
}

func (s *Screens) BookDetail(in router.BookDetailInput) (router.BookDetailResult, error) {
	exit := router.BookDetailResult{Action: router.BookDetailActionExit}

	final, killed, err := s.run("book_detail", NewDetailModel(in.Book, s.styles))
	if err != nil || killed {
		return exit, err
	}

	m, ok := final.(DetailModel)
	if !ok || m.Result() == nil {
		return exit, nil
	}
	return *m.Result(), nil
}
