package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m ListModel, keys ...string) (ListModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(ListModel)
	}
	return m, cmd
}

func newList(t *testing.T) (ListModel, *session.Session) {
	t.Helper()
	sess := session.New(catalog.Default())
	return NewListModel(router.BookListInput{State: sess}, DefaultStyles("")), sess
}

func TestListMoveAndSelect(t *testing.T) {
	m, _ := newList(t)

	m, cmd := press(t, m, "j", "down")
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Selected())

	m, cmd = press(t, m, "enter")
	require.NotNil(t, cmd)
	require.NotNil(t, m.Result())
	assert.Equal(t, router.BookListActionSelected, m.Result().Action)
	assert.Equal(t, "Sapiens", m.Result().Selected.Title)
	assert.Equal(t, 2, m.Result().Resume.SelectedIndex)
}

func TestListWrapsAtTop(t *testing.T) {
	m, _ := newList(t)

	m, _ = press(t, m, "k")
	assert.Equal(t, 3, m.Selected())
}

func TestListSearchFiltersLive(t *testing.T) {
	m, sess := newList(t)

	m, _ = press(t, m, "/")
	require.True(t, m.Searching())

	m, _ = press(t, m, "o", "r", "w")
	assert.Equal(t, "orw", sess.Query())
	assert.Len(t, sess.Visible(), 1)
	assert.Contains(t, m.View(), "1984")
	assert.NotContains(t, m.View(), "Sapiens")

	// q is text while searching.
	m, cmd := press(t, m, "q")
	assert.Nil(t, m.Result())
	assert.Equal(t, "orwq", sess.Query())
	_ = cmd

	m, _ = press(t, m, "backspace", "esc")
	assert.False(t, m.Searching())
	assert.Equal(t, "orw", sess.Query())

	m, _ = press(t, m, "ctrl+u")
	assert.Empty(t, sess.Query())
	assert.Len(t, sess.Visible(), 4)
}

func TestListCategoryCycling(t *testing.T) {
	m, sess := newList(t)

	m, _ = press(t, m, "j", "tab")
	assert.Equal(t, "Fiction", sess.Category())
	assert.Equal(t, 0, m.Selected())
	assert.NotContains(t, m.View(), "Clean Code")

	_, _ = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, "Programming", sess.Category())
}

func TestListEmptyResults(t *testing.T) {
	m, sess := newList(t)

	m, _ = press(t, m, "/", "x", "y", "z", "enter")
	require.Empty(t, sess.Visible())
	assert.Contains(t, m.View(), "No books match")

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Nil(t, m.Result())
}

func TestListExit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newList(t)
			m, cmd := press(t, m, k)
			require.NotNil(t, cmd)
			require.NotNil(t, m.Result())
			assert.Equal(t, router.BookListActionExit, m.Result().Action)
			assert.Nil(t, m.Result().Selected)
		})
	}
}

func TestListCtrlCExitsWhileSearching(t *testing.T) {
	m, _ := newList(t)

	m, _ = press(t, m, "/", "ctrl+c")
	require.NotNil(t, m.Result())
	assert.Equal(t, router.BookListActionExit, m.Result().Action)
}

func TestListResume(t *testing.T) {
	sess := session.New(catalog.Default())
	m := NewListModel(router.BookListInput{
		State:  sess,
		Resume: &router.BookListResume{SelectedIndex: 3, VisibleStartIndex: 0},
	}, DefaultStyles(""))

	assert.Equal(t, 3, m.Selected())
}

func TestListWindowSizeLimitsRows(t *testing.T) {
	m, _ := newList(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: listChromeHeight + 2})
	m = next.(ListModel)

	view := m.View()
	assert.Contains(t, view, "1984")
	assert.Contains(t, view, "Brave New World")
	assert.NotContains(t, view, "Sapiens")
}
