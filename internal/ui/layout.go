package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Responsive breakpoints and fixed sizes.
const (
	MinimumTerminalWidth = 80
	CompactModeWidth     = 100
	FullFeaturesWidth    = 120

	DefaultWidth  = 140
	DefaultHeight = 45

	SidebarWidth       = 26
	ConversationsWidth = 28
	SidePanelWidth     = 44
	SheetWidth         = 54

	HeaderHeight = 3
	FooterHeight = 3
)

// IsCompact reports whether width is below the compact breakpoint.
func IsCompact(width int) bool { return width > 0 && width < CompactModeWidth }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate shortens s to w display cells, ending with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// pad left-aligns s in a cell of width w, truncating when needed.
func pad(s string, w int) string {
	s = truncate(s, w)
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// padRight right-aligns s in a cell of width w.
func padRight(s string, w int) string {
	s = truncate(s, w)
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// renderProgressBar draws a bar like ████░░░░  65%
func renderProgressBar(st *Styles, pct, width int) string {
	if width < 8 {
		width = 8
	}
	barW := width - 5
	pct = clamp(pct, 0, 100)
	filled := barW * pct / 100

	fill := lipgloss.NewStyle().Foreground(st.Theme.Bar)
	empty := lipgloss.NewStyle().Foreground(st.Theme.BarBg)
	return fill.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", barW-filled)) +
		lipgloss.NewStyle().Foreground(st.Theme.Fg).Render(fmt.Sprintf(" %3d%%", pct))
}

// placeholder fills an area with a centered dim message.
func placeholder(st *Styles, w, h int, msg string) string {
	return lipgloss.NewStyle().
		Width(w).Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(st.Theme.Dim).
		Render(msg)
}
