package internal

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes at the reference resolution.
type FontSizes struct {
	ExtraLarge int
	Large      int
	Medium     int
	Small      int
	Tiny       int
}

var DefaultFontSizes = FontSizes{
	ExtraLarge: 56,
	Large:      44,
	Medium:     34,
	Small:      28,
	Tiny:       20,
}

type fontsManager struct {
	ExtraLargeFont *ttf.Font
	LargeFont      *ttf.Font
	MediumFont     *ttf.Font
	SmallFont      *ttf.Font
	TinyFont       *ttf.Font
}

// Fonts holds the opened fonts. It is filled by Init.
var Fonts fontsManager

// Screens are laid out for a 1024x768 panel and scaled from there.
const (
	referenceWidth  = 1024
	referenceHeight = 768
)

// GetScaleFactor returns how much larger or smaller the window is than the
// reference panel, using the tighter of the two axes.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}

	sx := float32(window.GetWidth()) / referenceWidth
	sy := float32(window.GetHeight()) / referenceHeight
	if sy < sx {
		return sy
	}
	return sx
}

// Scale multiplies a reference-resolution length by the scale factor.
func Scale(v int32) int32 {
	return int32(float32(v) * GetScaleFactor())
}

func fontPath() string {
	if v := os.Getenv(constants.FontPathEnvVar); v != "" {
		return v
	}
	return GetTheme().FontPath
}

func initFonts(sizes FontSizes) error {
	path := fontPath()
	if path == "" {
		return fmt.Errorf("load font: no font path set")
	}

	scale := GetScaleFactor()
	open := func(size int) (*ttf.Font, error) {
		scaled := int(float32(size) * scale)
		if scaled < 8 {
			scaled = 8
		}
		font, err := ttf.OpenFont(path, scaled)
		if err != nil {
			return nil, fmt.Errorf("load font %s at %dpt: %w", path, scaled, err)
		}
		return font, nil
	}

	var err error
	targets := []struct {
		font **ttf.Font
		size int
	}{
		{&Fonts.ExtraLargeFont, sizes.ExtraLarge},
		{&Fonts.LargeFont, sizes.Large},
		{&Fonts.MediumFont, sizes.Medium},
		{&Fonts.SmallFont, sizes.Small},
		{&Fonts.TinyFont, sizes.Tiny},
	}
	for _, t := range targets {
		if *t.font, err = open(t.size); err != nil {
			closeFonts()
			return err
		}
	}

	logging.GetInternalLogger().Debug("Fonts loaded", "path", path, "scale", scale)
	return nil
}

func closeFonts() {
	for _, f := range []**ttf.Font{
		&Fonts.ExtraLargeFont,
		&Fonts.LargeFont,
		&Fonts.MediumFont,
		&Fonts.SmallFont,
		&Fonts.TinyFont,
	} {
		if *f != nil {
			(*f).Close()
			*f = nil
		}
	}
}
