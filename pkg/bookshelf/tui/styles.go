// Package tui renders the book list and detail screens in a terminal with
// bubbletea. Screens implements router.Screens, so the same router drives
// either front end.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by both screens.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Chip        lipgloss.Style
	ChipActive  lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Author      lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Body        lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles builds the styles around an accent color such as "#008080".
func DefaultStyles(accent string) Styles {
	if accent == "" {
		accent = "#008080"
	}
	accentColor := lipgloss.Color(accent)
	muted := lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9A9A9A"}

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Subtitle:    lipgloss.NewStyle().Italic(true).Foreground(muted),
		Chip:        lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ChipActive:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accentColor),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		RowSelected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(accentColor).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accentColor),
		Author:      lipgloss.NewStyle().Foreground(muted),
		Label:       lipgloss.NewStyle().Foreground(muted).Width(10),
		Value:       lipgloss.NewStyle(),
		Body:        lipgloss.NewStyle().MarginTop(1),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(muted).PaddingLeft(2),
		Help:        lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
