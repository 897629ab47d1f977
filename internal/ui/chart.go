package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var eighths = []rune(" ▁▂▃▄▅▆▇█")

// chartColumns maps each of w columns to the value it draws. Every value
// gets at least one column; when there are more values than columns only
// the last w are kept. Values are never smoothed or merged.
func chartColumns(values []float64, w int) []float64 {
	if len(values) > w {
		values = values[len(values)-w:]
	}
	cols := make([]float64, w)
	for c := range cols {
		cols[c] = values[c*len(values)/w]
	}
	return cols
}

// renderAreaChart draws values as a filled area w cells wide and h rows
// tall, scaled from zero to the largest value drawn.
func renderAreaChart(st *Styles, values []float64, w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	if len(values) == 0 {
		return placeholder(st, w, h, "No data for this range.")
	}

	cols := chartColumns(values, w)
	hi := 0.0
	for _, v := range cols {
		hi = max(hi, v)
	}

	levels := make([]int, w)
	for c, v := range cols {
		if hi > 0 && v > 0 {
			levels[c] = int(math.Round(v / hi * float64(h*8)))
		}
	}

	fill := lipgloss.NewStyle().Foreground(st.Theme.Title)
	rows := make([]string, 0, h)
	for row := h - 1; row >= 0; row-- {
		line := make([]rune, w)
		for c, lv := range levels {
			cell := lv - row*8
			switch {
			case cell >= 8:
				line[c] = '█'
			case cell <= 0:
				line[c] = ' '
			default:
				line[c] = eighths[cell]
			}
		}
		rows = append(rows, fill.Render(string(line)))
	}
	return strings.Join(rows, "\n")
}

// axisLabels spreads first and last labels across w cells.
func axisLabels(first, last string, w int) string {
	if first == last {
		return pad(first, w)
	}
	gap := w - lipgloss.Width(first) - lipgloss.Width(last)
	if gap < 1 {
		return pad(first, w)
	}
	return first + strings.Repeat(" ", gap) + last
}
