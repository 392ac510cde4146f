package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	s, err := Parse([]byte(`
log_level = "debug"
log_path = "/tmp/bookshelf/app.log"
platform = "nextui"
accent_color = "#9B2257"
flip_face_buttons = true
show_background = false
font_path = "/mnt/SDCARD/font.ttf"
`))
	require.NoError(t, err)

	assert.Equal(t, Settings{
		LogLevel:        "debug",
		LogPath:         "/tmp/bookshelf/app.log",
		Platform:        PlatformNextUI,
		AccentColor:     "#9B2257",
		FlipFaceButtons: true,
		ShowBackground:  false,
		FontPath:        "/mnt/SDCARD/font.ttf",
	}, s)
	assert.Equal(t, uint32(0x9B2257), s.Accent())
}

func TestParseKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte(`platform = "cannoli"`))
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.True(t, s.ShowBackground)
	assert.Equal(t, PlatformCannoli, s.Platform)
	assert.Zero(t, s.Accent())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", `colour = "red"`},
		{"unknown platform", `platform = "onion"`},
		{"bad log level", `log_level = "loud"`},
		{"bad color", `accent_color = "#12345"`},
		{"non-hex color", `accent_color = "#GGGGGG"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`log_level = `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSettings)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestParseHexColor(t *testing.T) {
	for _, raw := range []string{"#008080", "0x008080", "008080", " #008080 "} {
		c, err := ParseHexColor(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, uint32(0x008080), c, raw)
	}

	_, err := ParseHexColor("")
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LOG_LEVEL":         "error",
		"FONT_PATH":         "/fonts/a.ttf",
		"FLIP_FACE_BUTTONS": "1",
		"PLATFORM":          "tg5040",
	}

	s := Default()
	s.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, "/fonts/a.ttf", s.FontPath)
	assert.True(t, s.FlipFaceButtons)
	assert.Equal(t, PlatformNextUI, s.Platform)
}

func TestApplyEnvKeepsExplicitPlatform(t *testing.T) {
	s := Default()
	s.Platform = PlatformCannoli
	s.ApplyEnv(func(k string) string {
		if k == "PLATFORM" {
			return "tg5040"
		}
		return ""
	})

	assert.Equal(t, PlatformCannoli, s.Platform)
	assert.Equal(t, "info", s.LogLevel)
}

func TestPlatformFromEnv(t *testing.T) {
	assert.Equal(t, PlatformNextUI, platformFromEnv("TG5050"))
	assert.Equal(t, PlatformNextUI, platformFromEnv("nextui"))
	assert.Equal(t, PlatformCannoli, platformFromEnv("cannoli"))
	assert.Equal(t, PlatformNone, platformFromEnv("desktop"))
	assert.Equal(t, PlatformNone, platformFromEnv(""))
}
