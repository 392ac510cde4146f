package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListWindowMoveWraps(t *testing.T) {
	w := NewListWindow(10, 4)

	w.Move(-1)
	assert.Equal(t, 9, w.Selected)
	assert.Equal(t, 6, w.VisibleStart, "wrapping up shows the last page")

	w.Move(1)
	assert.Equal(t, 0, w.Selected)
	assert.Equal(t, 0, w.VisibleStart)
}

func TestListWindowScrollsWhenLeavingView(t *testing.T) {
	w := NewListWindow(10, 4)

	w.Move(1)
	w.Move(1)
	w.Move(1)
	assert.Equal(t, 3, w.Selected)
	assert.Equal(t, 0, w.VisibleStart, "row 3 is still on screen")

	w.Move(1)
	assert.Equal(t, 4, w.Selected)
	assert.Equal(t, 3, w.VisibleStart)

	start, end := w.VisibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 7, end)
}

func TestListWindowShortList(t *testing.T) {
	w := NewListWindow(2, 8)

	w.Move(-1)
	assert.Equal(t, 1, w.Selected)
	assert.Equal(t, 0, w.VisibleStart)

	start, end := w.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestListWindowEmpty(t *testing.T) {
	w := NewListWindow(0, 4)

	w.Move(1)
	w.Move(-1)
	assert.Equal(t, 0, w.Selected)

	start, end := w.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestListWindowSetLenClamps(t *testing.T) {
	w := NewListWindow(10, 4)
	w.Restore(8, 6)

	w.SetLen(3)
	assert.Equal(t, 2, w.Selected)
	assert.Equal(t, 0, w.VisibleStart)

	w.SetLen(0)
	assert.Equal(t, 0, w.Selected)
}

func TestListWindowRestore(t *testing.T) {
	w := NewListWindow(4, 2)

	w.Restore(3, 2)
	assert.Equal(t, 3, w.Selected)
	assert.Equal(t, 2, w.VisibleStart)

	w.Restore(99, -5)
	assert.Equal(t, 3, w.Selected)
	assert.Equal(t, 2, w.VisibleStart)
}

func TestListWindowMinimumVisible(t *testing.T) {
	w := NewListWindow(3, 0)
	assert.Equal(t, 1, w.MaxVisible)

	w.Move(1)
	assert.Equal(t, 1, w.VisibleStart)
}
