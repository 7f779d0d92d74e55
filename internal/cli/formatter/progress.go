package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar draws value on a scale where max fills width cells. Values past
// max are clamped to a full bar.
func RenderBar(value, maxValue float64, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = int(value / maxValue * float64(width))
		if filled == 0 {
			filled = 1
		}
	}
	filled = min(filled, width)
	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderProgress renders worked against expected hours like [████░░░░] 45%.
// The bar takes the status color of the comparison.
func RenderProgress(work, expected float64, width int, style lipgloss.Style) string {
	pct := 0.0
	if expected > 0 {
		pct = work / expected
	} else if work > 0 {
		pct = 1
	}
	return fmt.Sprintf("[%s] %3.0f%%", RenderBar(work, max(expected, work, 0.0001), width, style), pct*100)
}
