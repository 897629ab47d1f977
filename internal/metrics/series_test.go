package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func april() []Point {
	series := make([]Point, 30)
	for i := range series {
		series[i] = Point{
			Date:         time.Date(2024, time.April, i+1, 0, 0, 0, 0, time.UTC),
			Tasks:        float64(20 + i),
			Earnings:     0.05 + float64(i)/100,
			Interactions: float64(45 + 5*i),
		}
	}
	return series
}

var ref = time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)

func TestFilterSevenDaysIsShortSuffix(t *testing.T) {
	series := april()
	got := Filter(series, ref, Range7d)
	require.NotEmpty(t, got)

	span := got[len(got)-1].Date.Sub(got[0].Date)
	assert.LessOrEqual(t, span, 7*24*time.Hour)
	assert.Equal(t, series[len(series)-len(got):], got, "result is a contiguous suffix")
	assert.Len(t, got, 8, "both window ends are inclusive")
}

func TestFilterWindows(t *testing.T) {
	series := april()
	assert.Len(t, Filter(series, ref, Range30d), 30)
	assert.Len(t, Filter(series, ref, Range90d), 30)

	mid := time.Date(2024, time.April, 10, 15, 30, 0, 0, time.UTC)
	got := Filter(series, mid, Range7d)
	require.Len(t, got, 8)
	assert.Equal(t, 3, got[0].Date.Day())
	assert.Equal(t, 10, got[len(got)-1].Date.Day(), "points after the reference date are excluded")

	assert.Empty(t, Filter(nil, ref, Range7d))
}

func TestValuesPassThrough(t *testing.T) {
	series := april()[:3]
	assert.Equal(t, []float64{20, 21, 22}, Values(series, MetricTasks))
	assert.Equal(t, []float64{45, 50, 55}, Values(series, MetricInteractions))
	assert.InDeltaSlice(t, []float64{0.05, 0.06, 0.07}, Values(series, MetricEarnings), 1e-9)
}

func TestParseRangeAndMetric(t *testing.T) {
	for _, r := range Ranges {
		got, err := ParseRange(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRange("14d")
	assert.Error(t, err)

	for _, m := range []Metric{MetricTasks, MetricEarnings, MetricInteractions} {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err = ParseMetric("revenue")
	assert.Error(t, err)
}

func TestCycling(t *testing.T) {
	assert.Equal(t, Range30d, Range90d.Next())
	assert.Equal(t, Range7d, Range30d.Next())
	assert.Equal(t, Range90d, Range7d.Next())

	assert.Equal(t, MetricEarnings, MetricTasks.Next())
	assert.Equal(t, MetricTasks, MetricInteractions.Next())

	assert.Equal(t, "Last 3 months", Range90d.Label())
	assert.Equal(t, "Last 7 days", Range7d.Label())
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{3, 9, 1, 4})
	assert.Equal(t, Summary{Min: 1, Max: 9, Latest: 4, Total: 17}, s)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestLastDate(t *testing.T) {
	assert.Equal(t, ref, LastDate(april()))
	assert.True(t, LastDate(nil).IsZero())
}
