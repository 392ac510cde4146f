// Package textinput holds the state of the on-screen search keyboard: the
// text being edited, the key grid the d-pad moves over, and the shift and
// symbol modes. Rendering lives with the SDL screens.
package textinput

// Buffer is editable text with a cursor measured in runes.
type Buffer struct {
	text   []rune
	cursor int
}

// NewBuffer creates a buffer holding initial with the cursor at the end.
func NewBuffer(initial string) *Buffer {
	text := []rune(initial)
	return &Buffer{text: text, cursor: len(text)}
}

// String returns the full text.
func (b *Buffer) String() string {
	return string(b.text)
}

// BeforeCursor returns the text left of the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.text[:b.cursor])
}

// Cursor returns the cursor position in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the text length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Insert adds s at the cursor and moves the cursor past it.
func (b *Buffer) Insert(s string) {
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}

	out := make([]rune, 0, len(b.text)+len(ins))
	out = append(out, b.text[:b.cursor]...)
	out = append(out, ins...)
	out = append(out, b.text[b.cursor:]...)
	b.text = out
	b.cursor += len(ins)
}

// Backspace removes the rune left of the cursor.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// MoveCursor shifts the cursor by delta runes, stopping at either end.
func (b *Buffer) MoveCursor(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.text) {
		b.cursor = len(b.text)
	}
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}
