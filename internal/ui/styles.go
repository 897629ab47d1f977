// Package ui renders the Mosaic dashboard with bubbletea and lipgloss.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"mosaic-tui/internal/agents"
)

// ---------------------------------------------------------------------------
// Color palette: Tokyo Night for dark, Tokyo Night Day for light
// ---------------------------------------------------------------------------

// Theme is a color scheme for every view.
type Theme struct {
	Name     string
	Title    lipgloss.Color
	Active   lipgloss.Color
	Training lipgloss.Color
	Inactive lipgloss.Color
	Error    lipgloss.Color
	Border   lipgloss.Color
	Fg       lipgloss.Color
	Dim      lipgloss.Color
	SelBg    lipgloss.Color
	Accent   lipgloss.Color
	Bar      lipgloss.Color
	BarBg    lipgloss.Color
	Info     lipgloss.Color
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.Color("#7aa2f7"),
		Active:   lipgloss.Color("#9ece6a"),
		Training: lipgloss.Color("#e0af68"),
		Inactive: lipgloss.Color("#565f89"),
		Error:    lipgloss.Color("#f7768e"),
		Border:   lipgloss.Color("#3b4261"),
		Fg:       lipgloss.Color("#c0caf5"),
		Dim:      lipgloss.Color("#565f89"),
		SelBg:    lipgloss.Color("#283457"),
		Accent:   lipgloss.Color("#bb9af7"),
		Bar:      lipgloss.Color("#9ece6a"),
		BarBg:    lipgloss.Color("#1a1b26"),
		Info:     lipgloss.Color("#7dcfff"),
	}
}

// LightTheme is for light terminals.
func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.Color("#2e7de9"),
		Active:   lipgloss.Color("#587539"),
		Training: lipgloss.Color("#8c6c3e"),
		Inactive: lipgloss.Color("#848cb5"),
		Error:    lipgloss.Color("#f52a65"),
		Border:   lipgloss.Color("#a8aecb"),
		Fg:       lipgloss.Color("#3760bf"),
		Dim:      lipgloss.Color("#848cb5"),
		SelBg:    lipgloss.Color("#b7c1e3"),
		Accent:   lipgloss.Color("#9854f1"),
		Bar:      lipgloss.Color("#587539"),
		BarBg:    lipgloss.Color("#e9e9ec"),
		Info:     lipgloss.Color("#007197"),
	}
}

// ThemeByName returns the named theme, falling back to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// moduleColors maps module style tags to display colors.
var moduleColors = map[string]lipgloss.Color{
	"blue":    "#7aa2f7",
	"purple":  "#bb9af7",
	"green":   "#9ece6a",
	"amber":   "#e0af68",
	"red":     "#f7768e",
	"indigo":  "#7383e0",
	"pink":    "#ff79c6",
	"cyan":    "#7dcfff",
	"emerald": "#73daca",
	"violet":  "#9d7cd8",
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Badge    lipgloss.Style
	Up       lipgloss.Style
	Down     lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(t.Fg).Underline(true),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(t.Fg),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Selected: lipgloss.NewStyle().Background(t.SelBg),
		Accent:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Tab:   lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1),
		TabOn: lipgloss.NewStyle().Foreground(t.Title).Bold(true).Underline(true).Padding(0, 1),
		Badge: lipgloss.NewStyle().Foreground(t.Fg).Background(t.SelBg).Padding(0, 1),
		Up:    lipgloss.NewStyle().Foreground(t.Active),
		Down:  lipgloss.NewStyle().Foreground(t.Error),
	}
}

// StatusColor is the badge color of an agent status.
func (s *Styles) StatusColor(st agents.Status) lipgloss.Color {
	switch st {
	case agents.StatusActive:
		return s.Theme.Active
	case agents.StatusTraining:
		return s.Theme.Training
	default:
		return s.Theme.Inactive
	}
}

// Status renders a colored status label.
func (s *Styles) Status(st agents.Status) string {
	return lipgloss.NewStyle().Foreground(s.StatusColor(st)).Render(st.String())
}

// ModuleColor resolves a module style tag, using the accent color for
// unknown tags.
func (s *Styles) ModuleColor(tag string) lipgloss.Color {
	if c, ok := moduleColors[tag]; ok {
		return c
	}
	return s.Theme.Accent
}
