package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with the state the screens share.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	width             int32
	height            int32
	hasVSync          bool
	lastPresentTime   uint64
}

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logging.GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = devWindowWidth, devWindowHeight
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, winOpts)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logging.GetInternalLogger().Warn("Invalid window dimension; using default", "variable", name, "value", v)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	logging.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logging.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		width:             width,
		height:            height,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if v := os.Getenv(constants.BackgroundPathEnvVar); v != "" {
		path = v
	}
	if !window.DisplayBackground || path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		logging.GetInternalLogger().Debug("No background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width every screen draws against.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight returns the logical height every screen draws against.
func (window *Window) GetHeight() int32 {
	return window.height
}

// Clear paints the theme background color, then the background image when
// one is loaded.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < constants.FrameDelay {
			sdl.Delay(uint32(constants.FrameDelay - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
