// Package nextui reads the NextUI system theme so the app matches the
// launcher's colors and font.
package nextui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
)

const (
	SettingsPath   = "/mnt/SDCARD/.userdata/shared/minuisettings.txt"
	fontPathFormat = "/mnt/SDCARD/.system/res/font%d.ttf"
	backgroundPath = "/mnt/SDCARD/bg.png"
)

// settings are the theme keys NextUI writes, as 0xRRGGBB values.
type settings struct {
	font   int
	colors map[string]uint32
}

func parseSettings(r io.Reader) settings {
	s := settings{font: 1, colors: make(map[string]uint32)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		if key == "font" {
			if n, err := strconv.Atoi(value); err == nil {
				s.font = n
			}
			continue
		}

		if strings.HasPrefix(key, "color") {
			hex := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "#")
			if n, err := strconv.ParseUint(hex, 16, 32); err == nil {
				s.colors[key] = uint32(n)
			}
		}
	}
	return s
}

func (s settings) color(key string, fallback uint32) uint32 {
	if c, ok := s.colors[key]; ok {
		return c
	}
	return fallback
}

// InitNextUITheme builds a theme from the NextUI settings file, falling
// back to NextUI's stock colors for anything missing.
func InitNextUITheme() internal.Theme {
	s := settings{font: 1, colors: map[string]uint32{}}

	f, err := os.Open(SettingsPath)
	if err != nil {
		logging.GetInternalLogger().Warn("NextUI settings unavailable, using stock theme", "error", err)
	} else {
		s = parseSettings(f)
		f.Close()
	}

	return internal.Theme{
		HighlightColor:       internal.HexToColor(s.color("color1", 0xFFFFFF)),
		AccentColor:          internal.HexToColor(s.color("color2", 0x9B2257)),
		ButtonLabelColor:     internal.HexToColor(s.color("color6", 0xFFFFFF)),
		TextColor:            internal.HexToColor(s.color("color4", 0xFFFFFF)),
		HighlightedTextColor: internal.HexToColor(s.color("color5", 0x000000)),
		HintColor:            internal.HexToColor(s.color("color3", 0x9A9A9A)),
		BackgroundColor:      internal.HexToColor(s.color("color7", 0x000000)),
		FontPath:             fmt.Sprintf(fontPathFormat, s.font),
		BackgroundImagePath:  backgroundPath,
	}
}
