package metrics

// Card is one tile of the summary strip above the chart.
type Card struct {
	Title    string
	Value    string
	Trend    string
	Up       bool
	Headline string
	Detail   string
}
