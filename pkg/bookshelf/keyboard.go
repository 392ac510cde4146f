package bookshelf

import (
	"time"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/nav"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/textinput"
	"github.com/veandco/go-sdl2/sdl"
)

type searchKeyboardState struct {
	window   *internal.Window
	renderer *sdl.Renderer
	settings Settings

	keyboard  *textinput.Keyboard
	dims      internal.KeyboardDimensions
	keyRects  [][]sdl.Rect
	cancelled bool

	directionalInput nav.DirectionalInput
	lastInputTime    time.Time
	cursorVisible    bool
	lastCursorBlink  time.Time
	cache            *internal.TextureCache
}

// searchKeyboard shows the on-screen keyboard editing initial. It returns
// the confirmed text, or ErrCancelled.
func searchKeyboard(initial string, settings Settings) (string, error) {
	window := internal.GetWindow()
	dims := internal.CalculateKeyboardDimensions(window.GetWidth(), window.GetHeight())
	keyboard := textinput.NewKeyboard(initial)

	kb := &searchKeyboardState{
		window:           window,
		renderer:         window.Renderer,
		settings:         settings,
		keyboard:         keyboard,
		dims:             dims,
		keyRects:         internal.LayoutKeys(keyboard.Rows(), dims),
		directionalInput: nav.NewDirectionalInput(),
		lastInputTime:    time.Now(),
		cursorVisible:    true,
		lastCursorBlink:  time.Now(),
		cache:            internal.NewTextureCache(),
	}
	defer kb.cache.Destroy()

	for !kb.keyboard.Entered && !kb.cancelled {
		if internal.QuitFlag().Requested() {
			kb.cancelled = true
			break
		}

		kb.handleEvents()
		kb.navigate(kb.directionalInput.Update())
		kb.updateCursorBlink()
		kb.render()
	}

	if kb.cancelled {
		return "", ErrCancelled
	}
	return kb.keyboard.Buffer.String(), nil
}

func (kb *searchKeyboardState) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(constants.FrameDelay)
	if event == nil {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		kb.cancelled = true
		internal.QuitFlag().Request("window closed")
	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyHatEvent, *sdl.ControllerDeviceEvent:
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			return
		}
		if inputEvent.Pressed {
			kb.handleInputEvent(inputEvent)
		} else {
			kb.directionalInput.SetHeld(inputEvent.Button, false)
		}
	}
}

func (kb *searchKeyboardState) handleInputEvent(inputEvent *internal.Event) {
	if time.Since(kb.lastInputTime) < kb.settings.InputDelay {
		return
	}
	kb.lastInputTime = time.Now()
	kb.cursorVisible = true
	kb.lastCursorBlink = time.Now()

	button := inputEvent.Button
	if button.IsDirectional() {
		kb.directionalInput.SetHeld(button, true)
		kb.navigate(directionOf(button))
		return
	}

	switch button {
	case constants.VirtualButtonA:
		kb.keyboard.Press()
	case constants.VirtualButtonB:
		kb.keyboard.Buffer.Backspace()
	case constants.VirtualButtonX:
		kb.keyboard.Buffer.Insert(" ")
	case constants.VirtualButtonL1:
		kb.keyboard.Buffer.MoveCursor(-1)
	case constants.VirtualButtonR1:
		kb.keyboard.Buffer.MoveCursor(1)
	case constants.VirtualButtonSelect:
		kb.keyboard.ToggleShift()
	case constants.VirtualButtonStart:
		kb.keyboard.Entered = true
	case constants.VirtualButtonY:
		kb.cancelled = true
	}
}

func directionOf(button constants.VirtualButton) nav.Direction {
	switch button {
	case constants.VirtualButtonUp:
		return nav.DirectionUp
	case constants.VirtualButtonDown:
		return nav.DirectionDown
	case constants.VirtualButtonLeft:
		return nav.DirectionLeft
	case constants.VirtualButtonRight:
		return nav.DirectionRight
	}
	return nav.DirectionNone
}

func (kb *searchKeyboardState) navigate(dir nav.Direction) {
	if dir != nav.DirectionNone {
		kb.keyboard.Move(dir)
	}
}

func (kb *searchKeyboardState) updateCursorBlink() {
	if time.Since(kb.lastCursorBlink) > 500*time.Millisecond {
		kb.cursorVisible = !kb.cursorVisible
		kb.lastCursorBlink = time.Now()
	}
}

func (kb *searchKeyboardState) keyLabel(cell textinput.Cell) string {
	switch cell.Special {
	case textinput.SpecialBackspace:
		return constants.Backspace
	case textinput.SpecialEnter:
		return constants.Enter
	case textinput.SpecialShift:
		return constants.Shift
	case textinput.SpecialSymbol:
		return constants.Symbols
	case textinput.SpecialSpace:
		return "space"
	}
	return kb.keyboard.Value(cell.Key)
}

func (kb *searchKeyboardState) render() {
	kb.window.Clear()

	kb.renderTextInput()
	kb.renderKeys()

	renderFooter(kb.renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{Button: constants.VirtualButtonY, HelpText: "Cancel"},
		{Button: constants.VirtualButtonB, HelpText: "Delete"},
		{Button: constants.VirtualButtonX, HelpText: "Space"},
		{Button: constants.VirtualButtonStart, HelpText: "Search", Right: true},
	}, kb.settings.Margins, kb.cache)

	kb.window.Present()
}

func (kb *searchKeyboardState) renderTextInput() {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	rect := kb.dims.TextInputRect()
	padding := internal.Scale(15)

	internal.DrawRoundedRect(kb.renderer, &rect, internal.Scale(12), theme.HintColor)
	inner := sdl.Rect{X: rect.X + 2, Y: rect.Y + 2, W: rect.W - 4, H: rect.H - 4}
	internal.DrawRoundedRect(kb.renderer, &inner, internal.Scale(10), theme.BackgroundColor)

	textY := rect.Y + (rect.H-int32(font.Height()))/2
	available := rect.W - 2*padding

	// Keep the cursor on screen by dropping text from the left.
	before := kb.keyboard.Buffer.BeforeCursor()
	text := kb.keyboard.Buffer.String()
	offset := internal.Max32(internal.MeasureText(font, before)-available, 0)

	if text != "" {
		texture, w, h := internal.RenderText(kb.renderer, font, text, theme.TextColor)
		if texture != nil {
			src := sdl.Rect{X: offset, Y: 0, W: internal.Min32(w-offset, available), H: h}
			kb.renderer.Copy(texture, &src, &sdl.Rect{X: rect.X + padding, Y: textY, W: src.W, H: h})
			texture.Destroy()
		}
	} else {
		internal.DrawText(kb.renderer, font, "Title or author", theme.HintColor, rect.X+padding, textY, constants.TextAlignLeft, kb.cache)
	}

	if kb.cursorVisible {
		cursorX := rect.X + padding + internal.MeasureText(font, before) - offset
		kb.renderer.SetDrawColor(theme.TextColor.R, theme.TextColor.G, theme.TextColor.B, theme.TextColor.A)
		kb.renderer.FillRect(&sdl.Rect{X: cursorX, Y: textY, W: 2, H: int32(font.Height())})
	}
}

func (kb *searchKeyboardState) renderKeys() {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	selected := kb.keyboard.Selected()
	radius := internal.Scale(8)

	for r, row := range kb.keyboard.Rows() {
		for c, cell := range row {
			rect := kb.keyRects[r][c]

			bg := theme.AccentColor
			fg := theme.ButtonLabelColor
			if cell.Special == textinput.SpecialShift && kb.keyboard.Mode() == textinput.ModeUpper ||
				cell.Special == textinput.SpecialSymbol && kb.keyboard.Mode() == textinput.ModeSymbols {
				bg = theme.HintColor
			}
			if cell == selected {
				bg = theme.HighlightColor
				fg = theme.HighlightedTextColor
			}

			internal.DrawRoundedRect(kb.renderer, &rect, radius, bg)
			internal.DrawText(kb.renderer, font, kb.keyLabel(cell), fg,
				rect.X+rect.W/2, rect.Y+(rect.H-int32(font.Height()))/2, constants.TextAlignCenter, kb.cache)
		}
	}
}
