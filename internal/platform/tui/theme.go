package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

// Theme contains all configurable visual styles for the board and viewer.
type Theme struct {
	// Card styles per color
	Cards    map[core.Color]lipgloss.Style
	Wildcard lipgloss.Style
	Empty    lipgloss.Style

	// Shape glyphs, one cell wide
	Glyphs        map[core.Shape]string
	WildcardGlyph string
	EmptyGlyph    string

	// Cards placed by the current play
	Highlight lipgloss.Style

	// Row and column labels
	Axis lipgloss.Style

	// Viewer chrome
	Title    lipgloss.Style
	Status   lipgloss.Style
	StatusOK lipgloss.Style
	StatusKO lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Cards: map[core.Color]lipgloss.Style{
			core.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			core.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			core.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			core.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		},
		Wildcard: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),            // Dark gray

		Glyphs: map[core.Shape]string{
			core.Circle:   "●",
			core.Square:   "■",
			core.Triangle: "▲",
			core.Cross:    "✚",
		},
		WildcardGlyph: "*",
		EmptyGlyph:    "·",

		Highlight: lipgloss.NewStyle().Underline(true).Bold(true),
		Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusOK: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		StatusKO: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// PlainTheme renders without styling and with ASCII glyphs, for pipes and logs.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	cards := make(map[core.Color]lipgloss.Style)
	for _, c := range core.AllColors() {
		cards[c] = plain
	}
	return Theme{
		Cards:    cards,
		Wildcard: plain,
		Empty:    plain,
		Glyphs: map[core.Shape]string{
			core.Circle:   "o",
			core.Square:   "#",
			core.Triangle: "^",
			core.Cross:    "+",
		},
		WildcardGlyph: "*",
		EmptyGlyph:    ".",
		Highlight:     plain,
		Axis:          plain,
		Title:         plain,
		Status:        plain,
		StatusOK:      plain,
		StatusKO:      plain,
	}
}

// Global theme variable (can be changed at runtime)
var boardTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	boardTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return boardTheme
}
