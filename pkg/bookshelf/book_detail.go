package bookshelf

import (
	"strconv"
	"time"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/icons"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/nav"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/veandco/go-sdl2/sdl"
)

// MetadataItem is one label/value row of the info section.
type MetadataItem struct {
	Label string
	Value string
}

type bookDetailState struct {
	window   *internal.Window
	renderer *sdl.Renderer
	settings Settings

	book     catalog.Book
	metadata []MetadataItem

	scrollY       int32
	maxScrollY    int32
	scrollStep    int32
	lastInputTime time.Time

	directionalInput nav.DirectionalInput
	cache            *internal.TextureCache
	bookIcon         *sdl.Texture

	result *router.BookDetailResult
}

func newBookDetailState(settings Settings, in router.BookDetailInput) *bookDetailState {
	window := internal.GetWindow()

	s := &bookDetailState{
		window:   window,
		renderer: window.Renderer,
		settings: settings,
		book:     in.Book,
		metadata: []MetadataItem{
			{Label: "Category", Value: in.Book.Category},
			{Label: "ID", Value: strconv.Itoa(in.Book.ID)},
		},
		scrollStep:       internal.Scale(40),
		lastInputTime:    time.Now(),
		directionalInput: nav.NewDirectionalInput(),
		cache:            internal.NewTextureCache(),
	}

	texture, err := internal.IconTexture(s.renderer, icons.Book, internal.Scale(96))
	if err != nil {
		logger().Warn("Failed to load book icon", "error", err)
	}
	s.bookIcon = texture

	return s
}

func (s *bookDetailState) cleanup() {
	s.cache.Destroy()
	if s.bookIcon != nil {
		s.bookIcon.Destroy()
	}
}

func (s *bookDetailState) finish(action router.BookDetailAction) {
	s.result = &router.BookDetailResult{Action: action}
}

func (s *bookDetailState) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(constants.FrameDelay)
	if event == nil {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		s.finish(router.BookDetailActionExit)
	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyHatEvent, *sdl.ControllerDeviceEvent:
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			return
		}
		if inputEvent.Pressed {
			s.handleInputEvent(inputEvent)
		} else {
			s.directionalInput.SetHeld(inputEvent.Button, false)
		}
	}
}

func (s *bookDetailState) handleInputEvent(inputEvent *internal.Event) {
	if time.Since(s.lastInputTime) < s.settings.InputDelay {
		return
	}
	s.lastInputTime = time.Now()

	switch inputEvent.Button {
	case constants.VirtualButtonUp:
		s.directionalInput.SetHeld(inputEvent.Button, true)
		s.scroll(-1)
	case constants.VirtualButtonDown:
		s.directionalInput.SetHeld(inputEvent.Button, true)
		s.scroll(1)
	case constants.VirtualButtonB:
		s.finish(router.BookDetailActionBack)
	}
}

func (s *bookDetailState) handleDirectionalRepeats() {
	switch s.directionalInput.Update() {
	case nav.DirectionUp:
		s.scroll(-1)
	case nav.DirectionDown:
		s.scroll(1)
	}
}

func (s *bookDetailState) scroll(direction int32) {
	s.scrollY += direction * s.scrollStep
	if s.scrollY > s.maxScrollY {
		s.scrollY = s.maxScrollY
	}
	if s.scrollY < 0 {
		s.scrollY = 0
	}
}

func isRectVisible(rect sdl.Rect, viewportHeight int32) bool {
	return rect.Y+rect.H >= 0 && rect.Y <= viewportHeight
}

func (s *bookDetailState) render() {
	s.window.Clear()

	margins := s.settings.Margins
	safeAreaHeight := s.window.GetHeight() - footerHeight() - margins.Bottom
	contentWidth := margins.ContentWidth(s.window.GetWidth())

	y := margins.Top - s.scrollY
	y = s.renderHeading(y, contentWidth, safeAreaHeight)
	y = s.renderIcon(y, safeAreaHeight)
	y = s.renderSectionTitle("Info", y, contentWidth, safeAreaHeight)
	y = s.renderMetadata(y, contentWidth, safeAreaHeight)
	if s.book.Description != "" {
		y = s.renderSectionTitle("Description", y, contentWidth, safeAreaHeight)
		y = s.renderDescription(y, contentWidth, safeAreaHeight)
	}

	totalHeight := y + s.scrollY - margins.Top
	s.maxScrollY = internal.Max32(totalHeight-(safeAreaHeight-margins.Top), 0)
	if s.scrollY > s.maxScrollY {
		s.scrollY = s.maxScrollY
	}
	s.renderScrollbar(safeAreaHeight, totalHeight)

	// Content scrolled under the footer is covered by a background band.
	bg := internal.GetTheme().BackgroundColor
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	s.renderer.FillRect(&sdl.Rect{X: 0, Y: safeAreaHeight, W: s.window.GetWidth(), H: s.window.GetHeight() - safeAreaHeight})

	renderFooter(s.renderer, internal.Fonts.SmallFont, []FooterHelpItem{
		{Button: constants.VirtualButtonB, HelpText: "Back"},
	}, margins, s.cache)

	s.window.Present()
}

func (s *bookDetailState) renderHeading(y, contentWidth, safeAreaHeight int32) int32 {
	theme := internal.GetTheme()
	center := s.window.GetWidth() / 2
	titleFont := internal.Fonts.LargeFont

	for _, line := range internal.WrapText(titleFont, s.book.Title, contentWidth) {
		h := int32(titleFont.Height())
		if isRectVisible(sdl.Rect{Y: y, H: h}, safeAreaHeight) {
			internal.DrawText(s.renderer, titleFont, line, theme.TextColor, center, y, constants.TextAlignCenter, s.cache)
		}
		y += h
	}

	authorFont := internal.Fonts.SmallFont
	if isRectVisible(sdl.Rect{Y: y, H: int32(authorFont.Height())}, safeAreaHeight) {
		author := internal.TruncateText(authorFont, "by "+s.book.Author, contentWidth)
		internal.DrawText(s.renderer, authorFont, author, theme.HintColor, center, y, constants.TextAlignCenter, s.cache)
	}

	return y + int32(authorFont.Height()) + constants.DefaultTitleSpacing + internal.Scale(10)
}

func (s *bookDetailState) renderIcon(y, safeAreaHeight int32) int32 {
	if s.bookIcon == nil {
		return y
	}

	_, _, w, h, err := s.bookIcon.Query()
	if err != nil {
		return y
	}

	rect := sdl.Rect{X: (s.window.GetWidth() - w) / 2, Y: y, W: w, H: h}
	if isRectVisible(rect, safeAreaHeight) {
		accent := internal.GetTheme().AccentColor
		s.bookIcon.SetColorMod(accent.R, accent.G, accent.B)
		s.renderer.Copy(s.bookIcon, nil, &rect)
	}
	return y + h + internal.Scale(20)
}

func (s *bookDetailState) renderSectionTitle(title string, y, contentWidth, safeAreaHeight int32) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	h := int32(font.Height())

	if isRectVisible(sdl.Rect{Y: y, H: h + 4}, safeAreaHeight) {
		internal.DrawText(s.renderer, font, title, theme.TextColor, s.settings.Margins.Left, y, constants.TextAlignLeft, s.cache)

		s.renderer.SetDrawColor(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B, theme.HintColor.A)
		s.renderer.FillRect(&sdl.Rect{X: s.settings.Margins.Left, Y: y + h + 2, W: contentWidth, H: 2})
	}
	return y + h + internal.Scale(16)
}

func (s *bookDetailState) renderMetadata(y, contentWidth, safeAreaHeight int32) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	h := int32(font.Height())
	x := s.settings.Margins.Left + internal.Scale(15)

	var labelWidth int32
	for _, item := range s.metadata {
		labelWidth = internal.Max32(labelWidth, internal.MeasureText(font, item.Label+":"))
	}
	valueX := x + labelWidth + internal.Scale(20)

	for _, item := range s.metadata {
		if isRectVisible(sdl.Rect{Y: y, H: h}, safeAreaHeight) {
			internal.DrawText(s.renderer, font, item.Label+":", theme.HintColor, x, y, constants.TextAlignLeft, s.cache)
			value := internal.TruncateText(font, item.Value, contentWidth-(valueX-s.settings.Margins.Left))
			internal.DrawText(s.renderer, font, value, theme.TextColor, valueX, y, constants.TextAlignLeft, s.cache)
		}
		y += h + internal.Scale(10)
	}
	return y + internal.Scale(10)
}

func (s *bookDetailState) renderDescription(y, contentWidth, safeAreaHeight int32) int32 {
	padding := internal.Scale(15)
	height := internal.DrawMultilineText(
		s.renderer,
		internal.Fonts.SmallFont,
		s.book.Description,
		contentWidth-2*padding,
		s.settings.Margins.Left+padding,
		y,
		safeAreaHeight,
		internal.GetTheme().TextColor,
		s.cache,
	)
	return y + height + padding
}

func (s *bookDetailState) renderScrollbar(safeAreaHeight, totalHeight int32) {
	if s.maxScrollY == 0 || totalHeight <= 0 {
		return
	}

	theme := internal.GetTheme()
	top := s.settings.Margins.Top
	trackH := safeAreaHeight - top
	w := internal.Max32(internal.Scale(4), 2)
	x := s.window.GetWidth() - s.settings.Margins.Right/2

	thumbH := internal.Max32(trackH*trackH/totalHeight, w*4)
	thumbY := top + (trackH-thumbH)*s.scrollY/s.maxScrollY

	internal.DrawRoundedRect(s.renderer, &sdl.Rect{X: x, Y: thumbY, W: w, H: thumbH}, w/2, theme.HintColor)
}

func (s *bookDetailState) run() router.BookDetailResult {
	defer s.cleanup()

	for s.result == nil {
		if internal.QuitFlag().Requested() {
			s.finish(router.BookDetailActionExit)
			break
		}

		s.handleEvents()
		if s.result != nil {
			break
		}
		s.handleDirectionalRepeats()
		s.render()
	}

	return *s.result
}
