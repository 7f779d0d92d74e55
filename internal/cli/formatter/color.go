package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor maps a summary status to its style: blue on target, green over,
// red under.
func StatusColor(status domain.SummaryStatus) lipgloss.Style {
	switch status {
	case domain.StatusOnTarget:
		return StyleBlue
	case domain.StatusOver:
		return StyleGreen
	case domain.StatusUnder:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill renders a status such as "● ON TARGET".
func StatusPill(status domain.SummaryStatus) string {
	switch status {
	case domain.StatusOnTarget:
		return StyleBlue.Render("● ON TARGET")
	case domain.StatusOver:
		return StyleGreen.Render("▲ OVER")
	case domain.StatusUnder:
		return StyleRed.Render("▼ UNDER")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(status)))
	}
}

// Header renders an upper-cased section title over a dim rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
