package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferInsertAtCursor(t *testing.T) {
	b := NewBuffer("helo")
	assert.Equal(t, 4, b.Cursor())

	b.MoveCursor(-1)
	b.Insert("l")
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 4, b.Cursor())
	assert.Equal(t, "hell", b.BeforeCursor())
}

func TestBufferMultibyte(t *testing.T) {
	b := NewBuffer("naïve")
	assert.Equal(t, 5, b.Len())

	b.MoveCursor(-2)
	b.Backspace()
	assert.Equal(t, "nave", b.String())
	assert.Equal(t, 2, b.Cursor())

	b.Insert("€")
	assert.Equal(t, "na€ve", b.String())
}

func TestBufferBackspaceAtStart(t *testing.T) {
	b := NewBuffer("ab")
	b.MoveCursor(-10)
	assert.Equal(t, 0, b.Cursor())

	b.Backspace()
	assert.Equal(t, "ab", b.String())
}

func TestBufferCursorClamp(t *testing.T) {
	b := NewBuffer("ab")
	b.MoveCursor(5)
	assert.Equal(t, 2, b.Cursor())
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer("orwell")
	b.Clear()
	assert.Empty(t, b.String())
	assert.Zero(t, b.Cursor())

	b.Insert("x")
	assert.Equal(t, "x", b.String())
}

func TestBufferInsertEmpty(t *testing.T) {
	b := NewBuffer("a")
	b.Insert("")
	assert.Equal(t, "a", b.String())
	assert.Equal(t, 1, b.Cursor())
}
