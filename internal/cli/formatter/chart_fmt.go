package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

// FormatChart draws a dataset as horizontal bars. Daily charts show each
// point as its share of the total; weekly and monthly charts pair the work
// bar with the expected bar on a common scale.
func FormatChart(ds app.Dataset, width int) string {
	var body string
	switch ds.Kind {
	case app.ChartDaily:
		body = proportionBars(ds, width)
	default:
		body = pairedBars(ds, width)
	}
	return RenderBox(ds.Title, body)
}

func proportionBars(ds app.Dataset, width int) string {
	s := ds.SeriesByName(chart.SeriesHours)
	if s == nil || len(s.Points) == 0 {
		return Dim("no data")
	}
	var total float64
	labelW := 0
	for _, p := range s.Points {
		total += p.Value
		labelW = max(labelW, lipgloss.Width(p.Label))
	}

	styles := []lipgloss.Style{StyleGreen, StyleYellow, StyleBlue, StylePurple}
	var b strings.Builder
	for i, p := range s.Points {
		pct := 0.0
		if total > 0 {
			pct = p.Value / total * 100
		}
		label := p.Label + strings.Repeat(" ", labelW-lipgloss.Width(p.Label))
		fmt.Fprintf(&b, "%s  %s  %s %s\n",
			StyleFg.Render(label),
			RenderBar(p.Value, total, width, styles[i%len(styles)]),
			FormatHours(p.Value),
			Dim(fmt.Sprintf("(%.0f%%)", pct)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func pairedBars(ds app.Dataset, width int) string {
	work := ds.SeriesByName(chart.SeriesWork)
	expected := ds.SeriesByName(chart.SeriesExpected)
	if work == nil || len(work.Points) == 0 {
		return Dim("no data")
	}
	scale := chart.Max(ds)

	labelW := 0
	for _, p := range work.Points {
		labelW = max(labelW, lipgloss.Width(p.Label))
	}

	var b strings.Builder
	for i, p := range work.Points {
		exp := 0.0
		if expected != nil && i < len(expected.Points) {
			exp = expected.Points[i].Value
		}
		style := StyleRed
		if p.Value >= exp {
			style = StyleGreen
		}
		label := p.Label + strings.Repeat(" ", labelW-lipgloss.Width(p.Label))
		pad := strings.Repeat(" ", labelW)
		fmt.Fprintf(&b, "%s  %s %s\n", StyleFg.Render(label), RenderBar(p.Value, scale, width, style), FormatDecimal(p.Value))
		fmt.Fprintf(&b, "%s  %s %s\n", pad, RenderBar(exp, scale, width, StyleDim), Dim(FormatDecimal(exp)))
	}
	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(filledBlock) + Dim(" work  ") + StyleDim.Render(filledBlock) + Dim(" expected"))
	return b.String()
}
