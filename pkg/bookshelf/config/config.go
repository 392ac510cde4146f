// Package config loads the optional TOML settings file. Command-line flags
// are applied on top by the caller, and environment variables on top of
// the file by ApplyEnv.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/constants"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Platform selects the firmware theme and input quirks.
type Platform string

const (
	PlatformNone    Platform = ""
	PlatformNextUI  Platform = "nextui"
	PlatformCannoli Platform = "cannoli"
)

// Settings is the decoded settings file.
type Settings struct {
	LogLevel        string   `toml:"log_level"`
	LogPath         string   `toml:"log_path"`
	Platform        Platform `toml:"platform"`
	AccentColor     string   `toml:"accent_color"`
	FlipFaceButtons bool     `toml:"flip_face_buttons"`
	ShowBackground  bool     `toml:"show_background"`
	FontPath        string   `toml:"font_path"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		LogLevel:       "info",
		ShowBackground: true,
	}
}

// Load reads and validates the settings file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a settings document over the defaults. Unknown keys are
// rejected so typos do not pass silently.
func Parse(data []byte) (Settings, error) {
	s := Default()

	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Settings{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Settings{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidSettings, strings.Join(keys, ", "))
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the fields that have a fixed set of values.
func (s Settings) Validate() error {
	switch s.Platform {
	case PlatformNone, PlatformNextUI, PlatformCannoli:
	default:
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidSettings, s.Platform)
	}

	switch strings.ToLower(s.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidSettings, s.LogLevel)
	}

	if s.AccentColor != "" {
		if _, err := ParseHexColor(s.AccentColor); err != nil {
			return fmt.Errorf("%w: accent_color: %v", ErrInvalidSettings, err)
		}
	}
	return nil
}

// Accent returns the accent color as 0xRRGGBB, or 0 when unset.
func (s Settings) Accent() uint32 {
	c, err := ParseHexColor(s.AccentColor)
	if err != nil {
		return 0
	}
	return c
}

// ParseHexColor accepts "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseHexColor(raw string) (uint32, error) {
	hex := strings.TrimSpace(raw)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q: want six hex digits", raw)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", raw, err)
	}
	return uint32(n), nil
}

// ApplyEnv overrides settings from the environment variables the launcher
// sets. getenv is os.Getenv outside tests.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if v := getenv(constants.LogLevelEnvVar); v != "" {
		s.LogLevel = v
	}
	if v := getenv(constants.FontPathEnvVar); v != "" {
		s.FontPath = v
	}
	if v := getenv(constants.FlipFaceButtonsEnvVar); v != "" {
		if flip, err := strconv.ParseBool(v); err == nil {
			s.FlipFaceButtons = flip
		}
	}
	if s.Platform == PlatformNone {
		s.Platform = platformFromEnv(getenv(constants.PlatformEnvVar))
	}
}

// NextUI exports PLATFORM as the device name (tg5040, tg5050, ...).
func platformFromEnv(v string) Platform {
	v = strings.ToLower(v)
	switch {
	case v == "":
		return PlatformNone
	case v == string(PlatformCannoli):
		return PlatformCannoli
	case strings.HasPrefix(v, "tg5") || v == string(PlatformNextUI):
		return PlatformNextUI
	}
	return PlatformNone
}
