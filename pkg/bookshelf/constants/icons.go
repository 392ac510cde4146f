package constants

// Icon glyphs from the theme's Nerd Font (Material Design Icons range).
const (
	Backspace = "\U000F030D"
	Enter     = "\U000F0311"
	Shift     = "\U000F0636"
	Symbols   = "\U000F030C"
)
