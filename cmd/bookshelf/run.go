package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/catalog"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/config"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/router"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/session"
	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/tui"
)

func setupLogging(settings config.Settings) {
	if settings.LogPath != "" {
		bookshelf.SetLogPath(settings.LogPath)
	}
	bookshelf.SetRawLogLevel(settings.LogLevel)
}

// accentHex normalizes the accent color to the "#RRGGBB" form lipgloss takes.
func accentHex(settings config.Settings) string {
	if settings.AccentColor == "" {
		return ""
	}
	return fmt.Sprintf("#%06X", settings.Accent())
}

func runSDL(ctx context.Context, settings config.Settings) error {
	setupLogging(settings)
	defer bookshelf.CloseLogger()
	logger := bookshelf.GetLogger()

	err := bookshelf.Init(bookshelf.Options{
		WindowTitle:          "Bookshelf",
		ShowBackground:       settings.ShowBackground,
		PrimaryThemeColorHex: settings.Accent(),
		IsCannoli:            settings.Platform == config.PlatformCannoli,
		IsNextUI:             settings.Platform == config.PlatformNextUI,
		FontPath:             settings.FontPath,
		FlipFaceButtons:      settings.FlipFaceButtons,
	})
	if err != nil {
		logger.Error("Unable to start", "error", err)
		return err
	}
	defer bookshelf.Close()

	ctx, stop := bookshelf.WatchSignals(ctx)
	defer stop()

	sess := session.New(catalog.Default())
	r := router.New(sess, bookshelf.NewScreens(), router.WithLogger(logger))

	logger.Info("Starting", "books", sess.Catalog().Len(), "platform", string(settings.Platform))
	if err := r.Run(ctx); err != nil {
		logger.Error("Router stopped", "error", err)
		return err
	}
	logger.Info("Exiting")
	return nil
}

func runTerminal(ctx context.Context, settings config.Settings) error {
	// The terminal belongs to bubbletea.
	bookshelf.DisableConsoleLogging()
	setupLogging(settings)
	defer bookshelf.CloseLogger()
	logger := bookshelf.GetLogger()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screens := tui.NewScreens(
		tui.WithContext(ctx),
		tui.WithAltScreen(),
		tui.WithStyles(tui.DefaultStyles(accentHex(settings))),
		tui.WithLogger(logger),
	)

	sess := session.New(catalog.Default())
	r := router.New(sess, screens, router.WithLogger(logger))

	logger.Info("Starting", "books", sess.Catalog().Len(), "mode", "tui")
	if err := r.Run(ctx); err != nil {
		logger.Error("Router stopped", "error", err)
		return err
	}
	return nil
}
