package app

type ChartKind string

const (
	ChartDaily   ChartKind = "daily"
	ChartWeekly  ChartKind = "weekly"
	ChartMonthly ChartKind = "monthly"
)

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Dataset is everything a renderer needs to draw one chart.
type Dataset struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Unit   string    `json:"unit"`
	Series []Series  `json:"series"`
}

// SeriesByName returns the named series, or nil.
func (d *Dataset) SeriesByName(name string) *Series {
	for i := range d.Series {
		if d.Series[i].Name == name {
			return &d.Series[i]
		}
	}
	return nil
}
