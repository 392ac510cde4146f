package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/power"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/quit"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window   *Window
	quitFlag quit.Flag

	powerCancel context.CancelFunc
	powerWG     sync.WaitGroup
)

// InitOptions are the settings Init needs from the public package.
type InitOptions struct {
	Title          string
	ShowBackground bool
	Window         WindowOptions
	Power          *power.Config // nil disables the power button watcher
}

// InitError names the SDL step that failed.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Init starts SDL, opens the window and loads fonts. On failure everything
// already started is shut down again.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return &InitError{Op: "sdl_init", Err: err}
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return &InitError{Op: "ttf_init", Err: err}
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.GetInternalLogger().Warn("Image formats unavailable, backgrounds disabled", "error", err)
	}

	InitInputProcessor()

	winOpts := opts.Window
	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	var err error
	window, err = initWindow(opts.Title, opts.ShowBackground, winOpts)
	if err != nil {
		shutdownSubsystems()
		return &InitError{Op: "window", Err: err}
	}

	if err := initFonts(DefaultFontSizes); err != nil {
		window.closeWindow()
		window = nil
		shutdownSubsystems()
		return &InitError{Op: "load_font", Err: err}
	}

	if opts.Power != nil && !constants.IsDevMode() {
		startPowerButton(*opts.Power)
	}

	return nil
}

func startPowerButton(cfg power.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	powerCancel = cancel

	handler := power.NewHandler(cfg, logging.GetInternalLogger(), func() {
		quitFlag.Request("power")
	})

	powerWG.Add(1)
	go func() {
		defer powerWG.Done()
		if err := handler.Run(ctx); err != nil {
			logging.GetInternalLogger().Error("Power button watcher stopped", "error", err)
		}
	}()
}

// QuitFlag is polled by every screen loop once per frame.
func QuitFlag() *quit.Flag {
	return &quitFlag
}

func shutdownSubsystems() {
	CloseAllControllers()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// SDLCleanup stops the power watcher and releases every SDL resource.
func SDLCleanup() {
	if powerCancel != nil {
		powerCancel()
		powerWG.Wait()
		powerCancel = nil
	}

	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	shutdownSubsystems()
	logging.CloseLogger()
}
