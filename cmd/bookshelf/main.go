// Command bookshelf browses the built-in book catalog on a handheld, or in a
// terminal with --tui.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	useTUI          bool
	settingsPath    string
	logLevel        string
	logPath         string
	nextUI          bool
	cannoli         bool
	flipFaceButtons bool
)

var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Browse, search and filter a small book catalog",
	Long: `bookshelf shows a searchable book list filtered by category, and a
detail screen for the selected book.

By default it opens an SDL window sized for retro handhelds. Run with --tui
to use the terminal instead.

Settings are read from an optional TOML file, then environment variables
(LOG_LEVEL, FONT_PATH, FLIP_FACE_BUTTONS, PLATFORM), then flags.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, os.Getenv)
		if err != nil {
			return err
		}
		if useTUI {
			return runTerminal(cmd.Context(), settings)
		}
		return runSDL(cmd.Context(), settings)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Run in the terminal instead of an SDL window")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a TOML settings file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&logPath, "log-path", "", "Log file path; parent directories are created")
	rootCmd.Flags().BoolVar(&nextUI, "nextui", false, "Use the NextUI theme and power button")
	rootCmd.Flags().BoolVar(&cannoli, "cannoli", false, "Use the Cannoli theme")
	rootCmd.Flags().BoolVar(&flipFaceButtons, "flip-face-buttons", false, "Map A and B directly instead of the Nintendo layout")
	rootCmd.MarkFlagsMutuallyExclusive("nextui", "cannoli")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
