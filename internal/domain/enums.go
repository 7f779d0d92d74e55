package domain

import "math"

type SummaryStatus string

const (
	StatusOnTarget SummaryStatus = "on_target"
	StatusOver     SummaryStatus = "over"
	StatusUnder    SummaryStatus = "under"
)

// Label returns a human-readable status name.
func (s SummaryStatus) Label() string {
	switch s {
	case StatusOnTarget:
		return "on target"
	case StatusOver:
		return "over"
	case StatusUnder:
		return "under"
	default:
		return string(s)
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClassifyWork compares worked hours against the expectation. Equality is
// tested on both values rounded to 2 decimals; only then is the raw work
// value compared for over/under.
func ClassifyWork(work, expected float64) SummaryStatus {
	switch {
	case Round2(work) == Round2(expected):
		return StatusOnTarget
	case work > expected:
		return StatusOver
	default:
		return StatusUnder
	}
}
