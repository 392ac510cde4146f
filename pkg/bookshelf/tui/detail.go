package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
)

// DetailModel is the bubbletea model of the book detail screen.
type DetailModel struct {
	book   catalog.Book
	styles Styles
	width  int

	result *router.BookDetailResult
}

// NewDetailModel creates the detail screen for book.
func NewDetailModel(book catalog.Book, styles Styles) DetailModel {
	return DetailModel{book: book, styles: styles, width: 80}
}

func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Result returns what the user did, or nil while the screen is open.
func (m DetailModel) Result() *router.BookDetailResult {
	return m.result
}

func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "b", "left", "h":
			m.result = &router.BookDetailResult{Action: router.BookDetailActionBack}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.result = &router.BookDetailResult{Action: router.BookDetailActionExit}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DetailModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.book.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("by " + m.book.Author))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString(m.styles.Value.Render(value))
		b.WriteString("\n")
	}
	row("Category", m.book.Category)
	row("ID", strconv.Itoa(m.book.ID))

	description := m.book.Description
	if description == "" {
		description = "No description."
	}
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	b.WriteString(m.styles.Body.Width(width).Render(description))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc back • q quit"))

	return b.String()
}
