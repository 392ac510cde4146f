package internal

import (
	"fmt"
	"math"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/wrap"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DrawRoundedRect fills rect with color, rounding each corner by radius.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	if radius < 0 {
		radius = 0
	}

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	r := float64(radius)
	for dy := int32(0); dy < radius; dy++ {
		dist := r - float64(dy) - 0.5
		inset := radius - int32(math.Round(math.Sqrt(r*r-dist*dist)))
		width := rect.W - 2*inset

		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: width, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: width, H: 1})
	}
}

// RenderText renders text into a new texture. The caller owns the texture.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32) {
	if text == "" || font == nil {
		return nil, 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}
	return texture, surface.W, surface.H
}

func textCacheKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)
}

// DrawText draws one line of text anchored at x according to align: the left
// edge, the centre or the right edge. It returns the drawn size.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign, cache *TextureCache) (int32, int32) {
	var texture *sdl.Texture
	if cache != nil {
		texture = cache.GetOrCreate(textCacheKey(font, text, color), func() *sdl.Texture {
			t, _, _ := RenderText(renderer, font, text, color)
			return t
		})
	} else {
		texture, _, _ = RenderText(renderer, font, text, color)
		if texture != nil {
			defer texture.Destroy()
		}
	}
	if texture == nil {
		return 0, 0
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// MeasureText returns the rendered width of text.
func MeasureText(font *ttf.Font, text string) int32 {
	if text == "" || font == nil {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

func measureWith(font *ttf.Font) wrap.Measure {
	return func(s string) int {
		return int(MeasureText(font, s))
	}
}

// TruncateText shortens text with an ellipsis to fit maxWidth.
func TruncateText(font *ttf.Font, text string, maxWidth int32) string {
	return wrap.Truncate(text, int(maxWidth), measureWith(font))
}

// WrapText breaks text into lines no wider than maxWidth.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	return wrap.Lines(text, int(maxWidth), measureWith(font))
}

// LineSpacing is the gap between wrapped lines.
func LineSpacing(font *ttf.Font) int32 {
	return int32(float32(font.Height()) * 0.3)
}

// MultilineTextHeight returns the height DrawMultilineText would use.
func MultilineTextHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	lines := WrapText(font, text, maxWidth)
	return int32(wrap.Height(lines, font.Height(), int(LineSpacing(font))))
}

// DrawMultilineText draws word-wrapped text starting at (x, y), skipping
// lines outside the viewport. It returns the total height.
func DrawMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, maxWidth, x, y, viewportHeight int32, color sdl.Color, cache *TextureCache) int32 {
	lines := WrapText(font, text, maxWidth)
	lineHeight := int32(font.Height())
	spacing := LineSpacing(font)

	for i, line := range lines {
		lineY := y + int32(i)*(lineHeight+spacing)
		if line == "" || lineY+lineHeight < 0 || lineY > viewportHeight {
			continue
		}
		DrawText(renderer, font, line, color, x, lineY, constants.TextAlignLeft, cache)
	}

	return int32(wrap.Height(lines, int(lineHeight), int(spacing)))
}
