package textinput

import "github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/nav"

// Special identifies a non-character key.
type Special string

const (
	SpecialNone      Special = ""
	SpecialBackspace Special = "backspace"
	SpecialEnter     Special = "enter"
	SpecialSpace     Special = "space"
	SpecialShift     Special = "shift"
	SpecialSymbol    Special = "symbol"
)

// Cell is one position in the key grid: either a character key index or a
// special key.
type Cell struct {
	Key     int
	Special Special
}

// IsSpecial reports whether the cell holds a special key.
func (c Cell) IsSpecial() bool {
	return c.Special != SpecialNone
}

// Key is a character key with its value in each mode.
type Key struct {
	Lower  string
	Upper  string
	Symbol string
}

// Mode is the active character set.
type Mode int

const (
	ModeLower Mode = iota
	ModeUpper
	ModeSymbols
)

func keyCell(i int) Cell         { return Cell{Key: i} }
func specialCell(s Special) Cell { return Cell{Key: -1, Special: s} }

func qwertyRows() [][]Cell {
	row := func(from, to int) []Cell {
		cells := make([]Cell, 0, to-from)
		for i := from; i < to; i++ {
			cells = append(cells, keyCell(i))
		}
		return cells
	}

	return [][]Cell{
		append(row(0, 10), specialCell(SpecialBackspace)),
		row(10, 20),
		append(row(20, 29), specialCell(SpecialEnter)),
		append(append([]Cell{specialCell(SpecialShift)}, row(29, 36)...), specialCell(SpecialSymbol)),
		{specialCell(SpecialSpace)},
	}
}

func qwertyKeys() []Key {
	keys := make([]Key, 0, 36)

	numbers := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}
	numberSymbols := []string{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")"}
	for i, n := range numbers {
		keys = append(keys, Key{Lower: n, Upper: n, Symbol: numberSymbols[i]})
	}

	letters := func(row string, symbols []string) {
		for i, r := range row {
			keys = append(keys, Key{Lower: string(r), Upper: string(r - 32), Symbol: symbols[i]})
		}
	}
	letters("qwertyuiop", []string{"`", "~", "[", "]", "\\", "|", "{", "}", ";", ":"})
	letters("asdfghjkl", []string{"'", "\"", "<", ">", "?", "/", "+", "=", "_"})
	letters("zxcvbnm", []string{",", ".", "-", "€", "£", "¥", "¢"})

	return keys
}

// Keyboard is the full state of the on-screen keyboard.
type Keyboard struct {
	Buffer  *Buffer
	Keys    []Key
	Entered bool

	rows    [][]Cell
	row     int
	col     int
	mode    Mode
	shift   bool
	symbols bool
}

// NewKeyboard creates a QWERTY keyboard editing initial.
func NewKeyboard(initial string) *Keyboard {
	return &Keyboard{
		Buffer: NewBuffer(initial),
		Keys:   qwertyKeys(),
		rows:   qwertyRows(),
	}
}

// Rows returns the key grid.
func (k *Keyboard) Rows() [][]Cell {
	return k.rows
}

// Selected returns the cell under the cursor.
func (k *Keyboard) Selected() Cell {
	return k.rows[k.row][k.col]
}

// Mode returns the active character set.
func (k *Keyboard) Mode() Mode {
	return k.mode
}

// Move walks the key grid, wrapping at every edge. Moving between rows of
// different length keeps the column where possible.
func (k *Keyboard) Move(dir nav.Direction) {
	switch dir {
	case nav.DirectionUp:
		k.row = (k.row - 1 + len(k.rows)) % len(k.rows)
	case nav.DirectionDown:
		k.row = (k.row + 1) % len(k.rows)
	case nav.DirectionLeft:
		k.col = (k.col - 1 + len(k.rows[k.row])) % len(k.rows[k.row])
	case nav.DirectionRight:
		k.col = (k.col + 1) % len(k.rows[k.row])
	}

	if k.col >= len(k.rows[k.row]) {
		k.col = len(k.rows[k.row]) - 1
	}
}

// Value returns what key index types in the current mode.
func (k *Keyboard) Value(index int) string {
	key := k.Keys[index]
	switch {
	case k.mode == ModeSymbols:
		return key.Symbol
	case index < 10 && k.shift:
		return key.Symbol
	case k.mode == ModeUpper:
		return key.Upper
	}
	return key.Lower
}

// Press activates the selected cell.
func (k *Keyboard) Press() {
	cell := k.Selected()
	if !cell.IsSpecial() {
		k.Buffer.Insert(k.Value(cell.Key))
		return
	}

	switch cell.Special {
	case SpecialBackspace:
		k.Buffer.Backspace()
	case SpecialEnter:
		k.Entered = true
	case SpecialSpace:
		k.Buffer.Insert(" ")
	case SpecialShift:
		k.ToggleShift()
	case SpecialSymbol:
		k.ToggleSymbols()
	}
}

// ToggleShift flips between lower and upper case. In symbol mode it only
// records the shift so it applies when symbols are turned off.
func (k *Keyboard) ToggleShift() {
	k.shift = !k.shift
	if k.mode == ModeSymbols {
		return
	}
	if k.shift {
		k.mode = ModeUpper
	} else {
		k.mode = ModeLower
	}
}

// ToggleSymbols flips symbol mode.
func (k *Keyboard) ToggleSymbols() {
	k.symbols = !k.symbols
	switch {
	case k.symbols:
		k.mode = ModeSymbols
	case k.shift:
		k.mode = ModeUpper
	default:
		k.mode = ModeLower
	}
}
