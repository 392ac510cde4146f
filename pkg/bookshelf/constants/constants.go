// Package constants defines shared constants, types, and configuration values
// used throughout the bookshelf UI.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"
	WindowWidthEnvVar     = "WINDOW_WIDTH"
	WindowHeightEnvVar    = "WINDOW_HEIGHT"
	FontPathEnvVar        = "FONT_PATH"
	BackgroundPathEnvVar  = "BACKGROUND_PATH"
	FlipFaceButtonsEnvVar = "FLIP_FACE_BUTTONS"
	LogLevelEnvVar        = "LOG_LEVEL"
	PlatformEnvVar        = "PLATFORM"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

// GetName returns the label printed on footer pills for the button.
func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// IsDirectional reports whether the button is part of the d-pad.
func (vb VirtualButton) IsDirectional() bool {
	return vb >= VirtualButtonUp && vb <= VirtualButtonRight
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	FrameDelay                = 16                    // Milliseconds between frames (~60fps)
)
