package bookshelf

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/icons"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/nav"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/veandco/go-sdl2/sdl"
)

type bookListController struct {
	window   *internal.Window
	renderer *sdl.Renderer
	settings Settings

	state router.ListState
	books []catalog.Book
	list  nav.ListWindow

	directionalInput nav.DirectionalInput
	lastInputTime    time.Time

	cache        *internal.TextureCache
	searchIcon   *sdl.Texture
	categoryIcon *sdl.Texture

	result *router.BookListResult
	err    error
}

func newBookListController(settings Settings, in router.BookListInput) *bookListController {
	window := internal.GetWindow()

	blc := &bookListController{
		window:           window,
		renderer:         window.Renderer,
		settings:         settings,
		state:            in.State,
		books:            in.State.Visible(),
		directionalInput: nav.NewDirectionalInputWithTiming(150*time.Millisecond, 50*time.Millisecond),
		lastInputTime:    time.Now(),
		cache:            internal.NewTextureCache(),
	}

	blc.list = nav.NewListWindow(len(blc.books), blc.calculateMaxVisibleItems())
	if in.Resume != nil {
		blc.list.Restore(in.Resume.SelectedIndex, in.Resume.VisibleStartIndex)
	}

	iconSize := int32(internal.Fonts.SmallFont.Height())
	blc.searchIcon = blc.loadIcon(icons.Search, iconSize)
	blc.categoryIcon = blc.loadIcon(icons.Category, iconSize)

	return blc
}

func (blc *bookListController) loadIcon(name icons.Name, size int32) *sdl.Texture {
	texture, err := internal.IconTexture(blc.renderer, name, size)
	if err != nil {
		logger().Warn("Failed to load icon", "icon", string(name), "error", err)
		return nil
	}
	return texture
}

func (blc *bookListController) cleanup() {
	blc.cache.Destroy()
	if blc.searchIcon != nil {
		blc.searchIcon.Destroy()
	}
	if blc.categoryIcon != nil {
		blc.categoryIcon.Destroy()
	}
}

func (blc *bookListController) itemHeight() int32 {
	return internal.Scale(72)
}

func (blc *bookListController) headerHeight() int32 {
	return int32(internal.Fonts.ExtraLargeFont.Height()) + int32(internal.Fonts.SmallFont.Height()) + internal.Scale(40)
}

func (blc *bookListController) calculateMaxVisibleItems() int {
	available := blc.window.GetHeight() - blc.settings.Margins.Top - blc.headerHeight() - footerHeight() - blc.settings.Margins.Bottom
	return int(internal.Max32(available/blc.itemHeight(), 1))
}

// refresh re-reads the filtered books after the query or category changed
// and puts the selection back on the first row.
func (blc *bookListController) refresh() {
	blc.books = blc.state.Visible()
	blc.list.SetLen(len(blc.books))
	blc.list.Restore(0, 0)
	blc.cache.Destroy()

	logger().Debug("Book list filtered",
		"query", blc.state.Query(),
		"category", blc.state.Category(),
		"visible", len(blc.books))
}

func (blc *bookListController) resume() *router.BookListResume {
	return &router.BookListResume{
		SelectedIndex:     blc.list.Selected,
		VisibleStartIndex: blc.list.VisibleStart,
	}
}

func (blc *bookListController) finish(action router.BookListAction, selected *catalog.Book) {
	blc.result = &router.BookListResult{
		Action:   action,
		Selected: selected,
		Resume:   blc.resume(),
	}
}

func (blc *bookListController) handleEvents() {
	processor := internal.GetInputProcessor()

	event := sdl.WaitEventTimeout(constants.FrameDelay)
	if event == nil {
		return
	}

	switch event.(type) {
	case *sdl.QuitEvent:
		blc.finish(router.BookListActionExit, nil)
	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyHatEvent, *sdl.ControllerDeviceEvent:
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			return
		}
		if inputEvent.Pressed {
			blc.handleInputEvent(inputEvent)
		} else {
			blc.directionalInput.SetHeld(inputEvent.Button, false)
		}
	}
}

func (blc *bookListController) handleInputEvent(inputEvent *internal.Event) {
	if time.Since(blc.lastInputTime) < blc.settings.InputDelay {
		return
	}
	blc.lastInputTime = time.Now()

	switch inputEvent.Button {
	case constants.VirtualButtonUp:
		blc.directionalInput.SetHeld(inputEvent.Button, true)
		blc.list.Move(-1)
	case constants.VirtualButtonDown:
		blc.directionalInput.SetHeld(inputEvent.Button, true)
		blc.list.Move(1)
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		blc.cycleCategory(-1)
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		blc.cycleCategory(1)
	case constants.VirtualButtonA:
		blc.selectCurrent()
	case constants.VirtualButtonB:
		blc.finish(router.BookListActionExit, nil)
	case constants.VirtualButtonX:
		blc.openSearch()
	case constants.VirtualButtonY:
		if blc.state.Query() != "" {
			blc.state.SetQuery("")
			blc.refresh()
		}
	}
}

func (blc *bookListController) handleDirectionalRepeats() {
	switch blc.directionalInput.Update() {
	case nav.DirectionUp:
		blc.list.Move(-1)
	case nav.DirectionDown:
		blc.list.Move(1)
	}
}

func (blc *bookListController) cycleCategory(delta int) {
	blc.state.CycleCategory(delta)
	blc.refresh()
}

func (blc *bookListController) selectCurrent() {
	if blc.list.Len() == 0 {
		return
	}
	book := blc.books[blc.list.Selected]
	blc.finish(router.BookListActionSelected, &book)
}

func (blc *bookListController) openSearch() {
	// Held directions are lost while the keyboard owns the event queue.
	blc.directionalInput.Reset()

	query, err := searchKeyboard(blc.state.Query(), blc.settings)
	switch {
	case err == nil:
		blc.state.SetQuery(query)
		blc.refresh()
	case IsCancelled(err):
		if internal.QuitFlag().Requested() {
			blc.finish(router.BookListActionExit, nil)
		}
	default:
		blc.err = err
	}
	blc.lastInputTime = time.Now()
}

func (blc *bookListController) render() {
	blc.window.Clear()

	margins := blc.settings.Margins
	theme := internal.GetTheme()
	width := blc.window.GetWidth()

	titleFont := internal.Fonts.ExtraLargeFont
	small := internal.Fonts.SmallFont

	internal.DrawText(blc.renderer, titleFont, blc.settings.Title, theme.TextColor, margins.Left, margins.Top, constants.TextAlignLeft, blc.cache)

	chipRight := width - margins.Right
	blc.renderCategoryChip(chipRight, margins.Top+(int32(titleFont.Height())-internal.Scale(44))/2)

	searchY := margins.Top + int32(titleFont.Height()) + internal.Scale(10)
	blc.renderSearchLine(margins.Left, searchY, margins.ContentWidth(width))

	startY := margins.Top + blc.headerHeight()
	blc.renderRows(startY)

	renderFooter(blc.renderer, small, blc.footerItems(), margins, blc.cache)
	blc.window.Present()
}

func (blc *bookListController) renderCategoryChip(right, y int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	h := internal.Scale(44)
	padding := internal.Scale(14)

	label := blc.state.Category()
	textW := internal.MeasureText(font, label)
	iconW := int32(0)
	if blc.categoryIcon != nil {
		iconW = int32(font.Height()) + padding/2
	}

	w := textW + iconW + 2*padding
	x := right - w
	internal.DrawRoundedRect(blc.renderer, &sdl.Rect{X: x, Y: y, W: w, H: h}, h/2, theme.AccentColor)

	if blc.categoryIcon != nil {
		size := int32(font.Height())
		blc.categoryIcon.SetColorMod(theme.ButtonLabelColor.R, theme.ButtonLabelColor.G, theme.ButtonLabelColor.B)
		blc.renderer.Copy(blc.categoryIcon, nil, &sdl.Rect{X: x + padding, Y: y + (h-size)/2, W: size, H: size})
	}
	internal.DrawText(blc.renderer, font, label, theme.ButtonLabelColor, x+padding+iconW, y+(h-int32(font.Height()))/2, constants.TextAlignLeft, blc.cache)
}

func (blc *bookListController) renderSearchLine(x, y, width int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	size := int32(font.Height())

	if blc.searchIcon != nil {
		blc.searchIcon.SetColorMod(theme.HintColor.R, theme.HintColor.G, theme.HintColor.B)
		blc.renderer.Copy(blc.searchIcon, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
	}

	text := "Press X to search"
	color := theme.HintColor
	if q := blc.state.Query(); q != "" {
		text = fmt.Sprintf("\"%s\"  %d found", q, len(blc.books))
		color = theme.TextColor
	}

	textX := x + size + internal.Scale(10)
	internal.DrawText(blc.renderer, font, internal.TruncateText(font, text, width-(textX-x)), color, textX, y, constants.TextAlignLeft, blc.cache)
}

func (blc *bookListController) renderRows(startY int32) {
	theme := internal.GetTheme()
	margins := blc.settings.Margins
	width := blc.window.GetWidth()
	titleFont := internal.Fonts.MediumFont
	authorFont := internal.Fonts.TinyFont

	if len(blc.books) == 0 {
		internal.DrawText(blc.renderer, internal.Fonts.SmallFont, "No books match", theme.HintColor, width/2, startY+internal.Scale(40), constants.TextAlignCenter, blc.cache)
		return
	}

	blc.list.SetMaxVisible(blc.calculateMaxVisibleItems())
	itemHeight := blc.itemHeight()
	cornerRadius := internal.Scale(20)
	contentWidth := margins.ContentWidth(width)
	gap := internal.Scale(30)

	start, end := blc.list.VisibleRange()
	for i := start; i < end; i++ {
		book := blc.books[i]
		itemY := startY + int32(i-start)*itemHeight

		textColor := theme.TextColor
		authorColor := theme.HintColor
		if i == blc.list.Selected {
			internal.DrawRoundedRect(blc.renderer, &sdl.Rect{
				X: margins.Left - internal.Scale(10),
				Y: itemY,
				W: contentWidth + internal.Scale(20),
				H: itemHeight - internal.Scale(8),
			}, cornerRadius, theme.HighlightColor)
			textColor = theme.HighlightedTextColor
			authorColor = theme.HighlightedTextColor
		}

		author := "by " + book.Author
		authorWidth := internal.Min32(internal.MeasureText(authorFont, author), contentWidth/2)
		titleWidth := contentWidth - authorWidth - gap

		rowMid := itemY + (itemHeight-internal.Scale(8))/2
		internal.DrawText(blc.renderer, titleFont, internal.TruncateText(titleFont, book.Title, titleWidth), textColor,
			margins.Left, rowMid-int32(titleFont.Height())/2, constants.TextAlignLeft, blc.cache)
		internal.DrawText(blc.renderer, authorFont, internal.TruncateText(authorFont, author, authorWidth), authorColor,
			width-margins.Right, rowMid-int32(authorFont.Height())/2, constants.TextAlignRight, blc.cache)
	}

	if blc.list.Len() > blc.list.MaxVisible {
		blc.renderScrollbar(startY, int32(blc.list.MaxVisible)*itemHeight)
	}
}

func (blc *bookListController) renderScrollbar(y, height int32) {
	theme := internal.GetTheme()
	x := blc.window.GetWidth() - blc.settings.Margins.Right/2
	w := internal.Max32(internal.Scale(4), 2)

	total := int32(blc.list.Len())
	thumbH := internal.Max32(height*int32(blc.list.MaxVisible)/total, w*4)
	thumbY := y + (height-thumbH)*int32(blc.list.VisibleStart)/internal.Max32(total-int32(blc.list.MaxVisible), 1)

	internal.DrawRoundedRect(blc.renderer, &sdl.Rect{X: x, Y: thumbY, W: w, H: thumbH}, w/2, theme.HintColor)
}

func (blc *bookListController) footerItems() []FooterHelpItem {
	items := []FooterHelpItem{
		{Button: constants.VirtualButtonB, HelpText: "Quit"},
		{Button: constants.VirtualButtonX, HelpText: "Search"},
	}
	if blc.state.Query() != "" {
		items = append(items, FooterHelpItem{Button: constants.VirtualButtonY, HelpText: "Clear"})
	}
	items = append(items,
		FooterHelpItem{Button: constants.VirtualButtonR1, HelpText: "Category", Right: true},
		FooterHelpItem{Button: constants.VirtualButtonA, HelpText: "Open", Right: true},
	)
	return items
}

func (blc *bookListController) run() (router.BookListResult, error) {
	defer blc.cleanup()

	for blc.result == nil && blc.err == nil {
		if internal.QuitFlag().Requested() {
			blc.finish(router.BookListActionExit, nil)
			break
		}

		blc.handleEvents()
		if blc.result != nil || blc.err != nil {
			break
		}
		blc.handleDirectionalRepeats()
		blc.render()
	}

	if blc.err != nil {
		return router.BookListResult{}, blc.err
	}
	return *blc.result, nil
}
