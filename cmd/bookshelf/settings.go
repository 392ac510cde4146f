package main

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/config"
)

// resolveSettings layers the settings file, the environment and the flags
// the user actually set, in that order.
func resolveSettings(cmd *cobra.Command, getenv func(string) string) (config.Settings, error) {
	settings := config.Default()
	if settingsPath != "" {
		var err error
		if settings, err = config.Load(settingsPath); err != nil {
			return config.Settings{}, err
		}
	}

	settings.ApplyEnv(getenv)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		settings.LogLevel = logLevel
	}
	if flags.Changed("log-path") {
		settings.LogPath = logPath
	}
	if flags.Changed("flip-face-buttons") {
		settings.FlipFaceButtons = flipFaceButtons
	}
	switch {
	case nextUI:
		settings.Platform = config.PlatformNextUI
	case cannoli:
		settings.Platform = config.PlatformCannoli
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}
