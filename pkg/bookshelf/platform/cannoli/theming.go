// Package cannoli provides theming for the Cannoli custom firmware.
package cannoli

import (
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
)

// DefaultFontPath is where Cannoli ships its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's colors and the given font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x8C8C8C),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontPath,
	}
}
