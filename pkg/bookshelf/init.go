// Package bookshelf renders the book catalog on SDL handhelds: a searchable,
// category-filtered book list, a detail screen and an on-screen search
// keyboard. Screens implements router.Screens so the router can drive it.
package bookshelf

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/logging"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/power"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/quit"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/platform/cannoli"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/platform/nextui"
)

// Options configures SDL initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags; zero picks a default for the mode
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses system theme)
	IsCannoli            bool                   // Enable Cannoli theming
	IsNextUI             bool                   // Enable NextUI theming and power button handling
	FontPath             string                 // Overrides the platform font
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

// Init initializes SDL, theming and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	var pbc *power.Config

	switch {
	case options.IsNextUI:
		theme := nextui.InitNextUITheme()

		// TG5050 exposes the power button on event2, every other device on event1.
		devicePath := "/dev/input/event1"
		if strings.Contains(strings.ToUpper(os.Getenv(constants.PlatformEnvVar)), "TG5050") {
			devicePath = "/dev/input/event2"
		}
		cfg := power.DefaultConfig(devicePath)
		pbc = &cfg

		internal.SetTheme(theme)
	default:
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.DefaultFontPath))
	}

	theme := internal.GetTheme()
	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	internal.SetTheme(theme)

	err := internal.Init(internal.InitOptions{
		Title:          options.WindowTitle,
		ShowBackground: options.ShowBackground,
		Window:         options.WindowOptions,
		Power:          pbc,
	})
	if err != nil {
		var initErr *internal.InitError
		if errors.As(err, &initErr) {
			return NewInfrastructureError(initErr.Op, initErr.Err)
		}
		return NewInfrastructureError("init", err)
	}

	logging.GetInternalLogger().Debug("SDL initialized", "nextui", options.IsNextUI, "cannoli", options.IsCannoli)
	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// RequestQuit makes every open screen exit at its next frame.
func RequestQuit(reason string) {
	internal.QuitFlag().Request(reason)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// WatchSignals makes SIGINT and SIGTERM close every open screen. The
// returned context is cancelled when a signal arrives so the router stops
// too. Call stop to release the signal handler.
func WatchSignals(parent context.Context) (ctx context.Context, stop func()) {
	return quit.Watch(parent, internal.QuitFlag(), syscall.SIGINT, syscall.SIGTERM)
}

// DisableConsoleLogging keeps log output off stdout, for the terminal front
// end. Call before the first log.
func DisableConsoleLogging() {
	logging.DisableConsole()
}

// CloseLogger flushes and closes the log file, if one is open.
func CloseLogger() {
	logging.CloseLogger()
}
