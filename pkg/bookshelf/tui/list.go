package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/nav"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
)

// Lines used by everything but the rows: title, chips, search, blank, help.
const listChromeHeight = 7

// ListModel is the bubbletea model of the book list screen.
type ListModel struct {
	state  router.ListState
	books  []catalog.Book
	window nav.ListWindow
	search textinput.Model
	styles Styles

	width  int
	height int

	result *router.BookListResult
}

// NewListModel creates the list screen for in.
func NewListModel(in router.BookListInput, styles Styles) ListModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search title or author"
	search.SetValue(in.State.Query())

	m := ListModel{
		state:  in.State,
		books:  in.State.Visible(),
		search: search,
		styles: styles,
	}
	m.window = nav.NewListWindow(len(m.books), 10)
	if in.Resume != nil {
		m.window.Restore(in.Resume.SelectedIndex, in.Resume.VisibleStartIndex)
	}
	return m
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

// Result returns what the user did, or nil while the screen is open.
func (m ListModel) Result() *router.BookListResult {
	return m.result
}

// Searching reports whether the search box has focus.
func (m ListModel) Searching() bool {
	return m.search.Focused()
}

// Selected returns the index of the highlighted row.
func (m ListModel) Selected() int {
	return m.window.Selected
}

func (m ListModel) resume() *router.BookListResume {
	return &router.BookListResume{
		SelectedIndex:     m.window.Selected,
		VisibleStartIndex: m.window.VisibleStart,
	}
}

func (m *ListModel) finish(action router.BookListAction, selected *catalog.Book) tea.Cmd {
	m.result = &router.BookListResult{Action: action, Selected: selected, Resume: m.resume()}
	return tea.Quit
}

func (m *ListModel) refresh() {
	m.books = m.state.Visible()
	m.window.SetLen(len(m.books))
	m.window.Restore(0, 0)
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = msg.Width - len(m.search.Prompt) - 1
		m.window.SetMaxVisible(msg.Height - listChromeHeight)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			cmd := m.finish(router.BookListActionExit, nil)
			return m, cmd
		}
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.search.Blur()
		return m, nil
	case "up", "down":
		m.search.Blur()
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.Query() {
		m.state.SetQuery(q)
		m.refresh()
	}
	return m, cmd
}

func (m ListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		cmd := m.finish(router.BookListActionExit, nil)
		return m, cmd
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "tab", "right", "l":
		m.state.CycleCategory(1)
		m.refresh()
	case "shift+tab", "left", "h":
		m.state.CycleCategory(-1)
		m.refresh()
	case "up", "k":
		m.window.Move(-1)
	case "down", "j":
		m.window.Move(1)
	case "ctrl+u":
		m.search.SetValue("")
		m.state.SetQuery("")
		m.refresh()
	case "enter":
		if m.window.Len() == 0 {
			return m, nil
		}
		book := m.books[m.window.Selected]
		cmd := m.finish(router.BookListActionSelected, &book)
		return m, cmd
	}
	return m, nil
}

func (m ListModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Books"))
	b.WriteString("\n")

	chips := make([]string, 0, len(m.state.Categories()))
	for _, c := range m.state.Categories() {
		if c == m.state.Category() {
			chips = append(chips, m.styles.ChipActive.Render(c))
		} else {
			chips = append(chips, m.styles.Chip.Render(c))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.books) == 0 {
		b.WriteString(m.styles.Empty.Render("No books match"))
		b.WriteString("\n")
	}

	start, end := m.window.VisibleRange()
	for i := start; i < end; i++ {
		book := m.books[i]
		line := fmt.Sprintf("%s  %s", book.Title, m.styles.Author.Render("by "+book.Author))
		if i == m.window.Selected {
			b.WriteString(m.styles.RowSelected.Render(line))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}

	help := "↑/↓ move • enter open • / search • tab category • ctrl+u clear • q quit"
	if m.search.Focused() {
		help = "type to filter • enter/esc done • ctrl+c quit"
	}
	b.WriteString(m.styles.Help.Render(help))

	return b.String()
}
