// Package internal contains the SDL infrastructure behind the bookshelf
// screens: window and renderer setup, theming, fonts, input mapping and the
// drawing helpers shared by every screen. It is not part of the public API.
//
// SDL-free logic lives in the subpackages so it can be tested without a
// display.
package internal
