package internal

import (
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/textinput"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyboardDimensions holds the keyboard area computed from the window size.
type KeyboardDimensions struct {
	KeyboardWidth   int32
	KeyboardHeight  int32
	StartX          int32
	TextInputY      int32
	KeyboardStartY  int32
	TextInputHeight int32
}

// CalculateKeyboardDimensions uses 85% of the window for the text line and
// the keys below it.
func CalculateKeyboardDimensions(windowWidth, windowHeight int32) KeyboardDimensions {
	keyboardWidth := (windowWidth * 85) / 100
	keyboardHeight := (windowHeight * 85) / 100
	textInputHeight := windowHeight / 10
	keyboardHeight = keyboardHeight - textInputHeight - 20
	startX := (windowWidth - keyboardWidth) / 2
	textInputY := (windowHeight - keyboardHeight - textInputHeight - 20) / 2

	return KeyboardDimensions{
		KeyboardWidth:   keyboardWidth,
		KeyboardHeight:  keyboardHeight,
		StartX:          startX,
		TextInputY:      textInputY,
		KeyboardStartY:  textInputY + textInputHeight + 20,
		TextInputHeight: textInputHeight,
	}
}

// TextInputRect returns the text line area.
func (d KeyboardDimensions) TextInputRect() sdl.Rect {
	return sdl.Rect{X: d.StartX, Y: d.TextInputY, W: d.KeyboardWidth, H: d.TextInputHeight}
}

const keySpacing int32 = 3

// keyUnits is the width of a cell in ordinary key widths.
func keyUnits(cell textinput.Cell) int32 {
	switch cell.Special {
	case textinput.SpecialBackspace, textinput.SpecialShift, textinput.SpecialSymbol:
		return 4
	case textinput.SpecialEnter:
		return 3
	case textinput.SpecialSpace:
		return 16
	}
	return 2
}

// LayoutKeys positions every cell of rows inside the keyboard area. Each row
// is centred, and a regular key spans two units so specials can be a key
// and a half wide.
func LayoutKeys(rows [][]textinput.Cell, dims KeyboardDimensions) [][]sdl.Rect {
	unit := dims.KeyboardWidth / 24
	keyHeight := dims.KeyboardHeight / int32(len(rows))

	rects := make([][]sdl.Rect, len(rows))
	for r, row := range rows {
		rowWidth := int32(len(row)-1) * keySpacing
		for _, cell := range row {
			rowWidth += keyUnits(cell) * unit
		}

		x := dims.StartX + (dims.KeyboardWidth-rowWidth)/2
		y := dims.KeyboardStartY + int32(r)*keyHeight

		rects[r] = make([]sdl.Rect, len(row))
		for c, cell := range row {
			w := keyUnits(cell) * unit
			rects[r][c] = sdl.Rect{X: x, Y: y, W: w, H: keyHeight - keySpacing}
			x += w + keySpacing
		}
	}
	return rects
}
