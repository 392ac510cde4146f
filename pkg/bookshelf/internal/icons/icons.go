// Package icons rasterizes the embedded SVG glyphs used by the SDL screens.
package icons

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var files embed.FS

// Name identifies an embedded icon.
type Name string

const (
	Book     Name = "book"
	Search   Name = "search"
	Category Name = "category"
)

// ErrEmptyIcon is returned for documents without a usable view box.
var ErrEmptyIcon = errors.New("icons: svg has no view box")

// Load rasterizes the named embedded icon into a size by size image.
func Load(name Name, size int) (*image.RGBA, error) {
	data, err := files.ReadFile("svg/" + string(name) + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icons: unknown icon %q: %w", name, err)
	}
	return Rasterize(data, size, size)
}

// Rasterize renders an SVG document scaled to width by height.
func Rasterize(svg []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icons: invalid size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse svg: %w", err)
	}
	if icon.ViewBox.W == 0 || icon.ViewBox.H == 0 {
		return nil, ErrEmptyIcon
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}
