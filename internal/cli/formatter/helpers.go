package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatHours renders fractional hours as "7h 30m". Minutes are rounded.
func FormatHours(h float64) string {
	neg := h < 0
	total := int(math.Round(math.Abs(h) * 60))
	hours, mins := total/60, total%60

	var s string
	switch {
	case total == 0:
		return "0m"
	case hours > 0 && mins > 0:
		s = fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		s = fmt.Sprintf("%dh", hours)
	default:
		s = fmt.Sprintf("%dm", mins)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatDecimal renders hours with two decimals, the stored precision.
func FormatDecimal(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// HumanDate renders t relative to now when it is today or yesterday.
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// WorkDaysLabel abbreviates work days, e.g. "Mon Tue Wed".
func WorkDaysLabel(days domain.WorkDays) string {
	if len(days) == 0 {
		return Dim("--")
	}
	names := make([]string, 0, len(days))
	for _, d := range days.Distinct() {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, " ")
}

// TagsLabel renders free-text tags in purple, or a dim placeholder.
func TagsLabel(tags string) string {
	if strings.TrimSpace(tags) == "" {
		return Dim("--")
	}
	return StylePurple.Render(tags)
}
