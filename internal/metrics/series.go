// Package metrics filters the static performance series and describes the
// summary cards of the dashboard.
package metrics

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used by the series and config.
const DateLayout = "2006-01-02"

// Point is one day of agent performance.
type Point struct {
	Date         time.Time
	Tasks        float64
	Earnings     float64 // ETH
	Interactions float64
}

// Range is a trailing window length in days.
type Range int

const (
	Range7d  Range = 7
	Range30d Range = 30
	Range90d Range = 90
)

// Ranges lists the windows offered by the chart, widest first.
var Ranges = []Range{Range90d, Range30d, Range7d}

// DefaultRange is the window shown on a full-width terminal.
const DefaultRange = Range30d

// CompactRange is the window applied when the display turns compact.
const CompactRange = Range7d

func (r Range) String() string { return fmt.Sprintf("%dd", int(r)) }

// Label is the human-readable window name.
func (r Range) Label() string {
	switch r {
	case Range90d:
		return "Last 3 months"
	default:
		return fmt.Sprintf("Last %d days", int(r))
	}
}

// Next cycles to the next narrower window, wrapping to the widest.
func (r Range) Next() Range {
	for i, candidate := range Ranges {
		if candidate == r {
			return Ranges[(i+1)%len(Ranges)]
		}
	}
	return DefaultRange
}

// ParseRange parses "7d", "30d" or "90d".
func ParseRange(s string) (Range, error) {
	for _, r := range Ranges {
		if strings.EqualFold(strings.TrimSpace(s), r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown time range %q (valid: 7d, 30d, 90d)", s)
}

// Metric selects which trace of the series is plotted.
type Metric int

const (
	MetricTasks Metric = iota
	MetricEarnings
	MetricInteractions
)

var (
	metricKeys   = [...]string{"tasks", "earnings", "interactions"}
	metricLabels = [...]string{"Tasks Completed", "Earnings (ETH)", "Interactions"}
)

func (m Metric) String() string { return metricKeys[m] }

// Label is the legend text for the metric.
func (m Metric) Label() string { return metricLabels[m] }

// Next cycles through the metrics.
func (m Metric) Next() Metric { return (m + 1) % Metric(len(metricKeys)) }

// Value extracts the metric from a point.
func (m Metric) Value(p Point) float64 {
	switch m {
	case MetricEarnings:
		return p.Earnings
	case MetricInteractions:
		return p.Interactions
	default:
		return p.Tasks
	}
}

// Format renders a value with the precision the metric needs.
func (m Metric) Format(v float64) string {
	if m == MetricEarnings {
		return fmt.Sprintf("%.2f ETH", v)
	}
	return fmt.Sprintf("%.0f", v)
}

// ParseMetric parses "tasks", "earnings" or "interactions".
func ParseMetric(s string) (Metric, error) {
	for i, k := range metricKeys {
		if strings.EqualFold(strings.TrimSpace(s), k) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (valid: tasks, earnings, interactions)", s)
}

// Filter keeps the points dated within [ref-r, ref], both ends inclusive,
// in their original order. Dates are compared by calendar day.
func Filter(series []Point, ref time.Time, r Range) []Point {
	end := day(ref)
	start := end.AddDate(0, 0, -int(r))
	out := make([]Point, 0, len(series))
	for _, p := range series {
		d := day(p.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Values returns the chosen trace of points, unsmoothed.
func Values(points []Point, m Metric) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = m.Value(p)
	}
	return out
}

// LastDate returns the latest date in the series, or the zero time.
func LastDate(series []Point) time.Time {
	var last time.Time
	for _, p := range series {
		if p.Date.After(last) {
			last = p.Date
		}
	}
	return last
}

// Summary is the min/max/latest readout under the chart.
type Summary struct {
	Min, Max, Latest, Total float64
}

// Summarize computes the readout for values; an empty slice gives zeros.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{Min: values[0], Max: values[0], Latest: values[len(values)-1]}
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		s.Total += v
	}
	return s
}
