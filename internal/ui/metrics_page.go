package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mosaic-tui/internal/metrics"
)

// MetricsPage is the dashboard: summary cards over the performance chart.
type MetricsPage struct {
	styles *Styles
	cards  []metrics.Card
	series []metrics.Point
	ref    time.Time

	rng     metrics.Range
	metric  metrics.Metric
	compact bool

	width  int
	height int
}

// NewMetricsPage builds the dashboard. A zero ref uses the last sample date.
func NewMetricsPage(st *Styles, cards []metrics.Card, series []metrics.Point, ref time.Time, rng metrics.Range, metric metrics.Metric) MetricsPage {
	m := MetricsPage{
		styles: st,
		cards:  cards,
		series: series,
		rng:    rng,
		metric: metric,
	}
	m.SetReference(ref)
	return m
}

func (m *MetricsPage) SetSize(w, h int) {
	m.width, m.height = w, h
}

// SetCompact follows the terminal's compact state. Entering compact narrows
// the range to 7d; leaving it keeps whatever range is selected.
func (m *MetricsPage) SetCompact(on bool) {
	if on && !m.compact {
		m.rng = metrics.CompactRange
	}
	m.compact = on
}

// SetReference moves the end of the chart window. A zero time uses the last
// sample date.
func (m *MetricsPage) SetReference(ref time.Time) {
	if ref.IsZero() {
		ref = metrics.LastDate(m.series)
	}
	m.ref = ref
}

// SetRange selects the time window.
func (m *MetricsPage) SetRange(r metrics.Range) { m.rng = r }

// SetMetric selects the plotted trace.
func (m *MetricsPage) SetMetric(mt metrics.Metric) { m.metric = mt }

// Range is the selected window.
func (m MetricsPage) Range() metrics.Range { return m.rng }

// Metric is the plotted trace.
func (m MetricsPage) Metric() metrics.Metric { return m.metric }

// Reference is the last day of the chart window.
func (m MetricsPage) Reference() time.Time { return m.ref }

// Points returns the samples inside the selected window.
func (m MetricsPage) Points() []metrics.Point {
	return metrics.Filter(m.series, m.ref, m.rng)
}

func (m MetricsPage) Help() pageHelp { return metricsKeys.help() }

func (m MetricsPage) Update(msg tea.Msg) (MetricsPage, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, metricsKeys.Range):
			m.rng = m.rng.Next()
		case key.Matches(msg, metricsKeys.Metric):
			m.metric = m.metric.Next()
		}
	}
	return m, nil
}

func (m MetricsPage) View() string {
	w := m.width
	if w == 0 {
		w = DefaultWidth - SidebarWidth
	}
	cards := m.renderCards(w)
	chartH := clamp(m.height-lipgloss.Height(cards)-8, 4, 14)
	return lipgloss.JoinVertical(lipgloss.Left, cards, m.renderChart(w, chartH))
}

func (m MetricsPage) renderCards(w int) string {
	if len(m.cards) == 0 {
		return ""
	}
	st := m.styles
	perRow := len(m.cards)
	if m.compact {
		perRow = 2
	}
	cardW := w/perRow - 2

	var rendered []string
	for _, c := range m.cards {
		trendStyle, arrow := st.Up, "↗"
		if !c.Up {
			trendStyle, arrow = st.Down, "↘"
		}
		body := fmt.Sprintf("%s\n%s  %s\n%s\n%s",
			st.Dim.Render(c.Title),
			lipgloss.NewStyle().Bold(true).Foreground(st.Theme.Fg).Render(c.Value),
			trendStyle.Render(arrow+" "+c.Trend),
			st.Label.Render(truncate(c.Headline+" "+arrow, cardW-2)),
			st.Dim.Render(truncate(c.Detail, cardW-2)))
		rendered = append(rendered, st.Panel.Width(cardW).Render(body))
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:min(i+perRow, len(rendered))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m MetricsPage) renderChart(w, chartH int) string {
	st := m.styles
	points := m.Points()
	values := metrics.Values(points, m.metric)

	var tabs []string
	if m.compact {
		tabs = append(tabs, st.TabOn.Render(m.rng.Label()))
	} else {
		for _, r := range metrics.Ranges {
			if r == m.rng {
				tabs = append(tabs, st.TabOn.Render(r.Label()))
			} else {
				tabs = append(tabs, st.Tab.Render(r.Label()))
			}
		}
	}

	innerW := w - 6

	var b strings.Builder
	b.WriteString(st.Title.Render("Agent Performance") + "  " + strings.Join(tabs, " ") + "\n")
	b.WriteString(st.Dim.Render(fmt.Sprintf("%s for the %s", m.metric.Label(), strings.ToLower(m.rng.Label()))) + "\n\n")
	b.WriteString(renderAreaChart(st, values, innerW, chartH) + "\n")

	// The chart keeps one column per day, so a narrow panel shows the
	// most recent days only.
	shown := points[max(len(points)-innerW, 0):]
	if len(shown) > 0 {
		b.WriteString(st.Dim.Render(axisLabels(
			shown[0].Date.Format("Jan 2"),
			shown[len(shown)-1].Date.Format("Jan 2"),
			innerW)) + "\n")
	}
	if len(shown) < len(points) {
		b.WriteString(st.Dim.Render(fmt.Sprintf("Latest %d of %d days.", len(shown), len(points))) + "\n")
	}

	sum := metrics.Summarize(values)
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %d",
		st.Label.Render("Min:"), m.metric.Format(sum.Min),
		st.Label.Render("Max:"), m.metric.Format(sum.Max),
		st.Label.Render("Latest:"), m.metric.Format(sum.Latest),
		st.Label.Render("Days:"), len(points)))

	return st.Panel.Width(w - 2).Render(b.String())
}
