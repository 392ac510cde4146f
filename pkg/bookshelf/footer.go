package bookshelf

import (
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is one button hint in the footer, drawn as a pill holding
// the button name followed by what it does.
type FooterHelpItem struct {
	Button   constants.VirtualButton
	HelpText string
	Right    bool // Group with the right-aligned hints
}

func footerHeight() int32 {
	return internal.Scale(50)
}

func pillWidth(font *ttf.Font, item FooterHelpItem, padding int32) (int32, int32) {
	buttonW := internal.MeasureText(font, item.Button.GetName()) + 2*padding
	textW := internal.MeasureText(font, item.HelpText)
	return buttonW, buttonW + textW + 3*padding
}

func renderFooterPill(renderer *sdl.Renderer, font *ttf.Font, item FooterHelpItem, x, y, h int32, cache *internal.TextureCache) int32 {
	theme := internal.GetTheme()
	padding := internal.Scale(10)
	buttonW, totalW := pillWidth(font, item, padding)

	internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: totalW, H: h}, h/2, theme.HighlightColor)

	inset := internal.Max32(h/8, 2)
	internal.DrawRoundedRect(renderer, &sdl.Rect{X: x + inset, Y: y + inset, W: buttonW, H: h - 2*inset}, (h-2*inset)/2, theme.AccentColor)

	textY := y + (h-int32(font.Height()))/2
	internal.DrawText(renderer, font, item.Button.GetName(), theme.ButtonLabelColor, x+inset+buttonW/2, textY, constants.TextAlignCenter, cache)
	internal.DrawText(renderer, font, item.HelpText, theme.HighlightedTextColor, x+inset+buttonW+padding, textY, constants.TextAlignLeft, cache)

	return totalW
}

// renderFooter draws the hint pills along the bottom edge: left group from
// the left margin, right group ending at the right margin.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, margins internal.Padding, cache *internal.TextureCache) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	h := internal.Scale(40)
	y := window.GetHeight() - margins.Bottom - h
	gap := internal.Scale(12)
	padding := internal.Scale(10)

	x := margins.Left
	for _, item := range items {
		if item.Right {
			continue
		}
		x += renderFooterPill(renderer, font, item, x, y, h, cache) + gap
	}

	var rightWidth int32
	for _, item := range items {
		if item.Right {
			_, w := pillWidth(font, item, padding)
			rightWidth += w + gap
		}
	}

	x = window.GetWidth() - margins.Right - rightWidth + gap
	for _, item := range items {
		if !item.Right {
			continue
		}
		x += renderFooterPill(renderer, font, item, x, y, h, cache) + gap
	}
}
