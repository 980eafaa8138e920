package theme

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Warn  = lipgloss.NewStyle().Foreground(Yellow)

	ErrorBanner = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1)

	Empty = lipgloss.NewStyle().
		Foreground(Subtext0).
		Italic(true).
		Padding(1, 2)
)

// NewBar returns a progress bar in the palette's lavender to sapphire ramp.
func NewBar(width int) progress.Model {
	bar := progress.New(progress.WithGradient(string(Lavender), string(Sapphire)), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return bar
}

// Percent renders p as a bar followed by the integer value.
func Percent(bar progress.Model, p int) string {
	return bar.ViewAs(float64(p)/100) + " " + fmt.Sprintf("%3d%%", p)
}

// Banner renders an error with the retry hint shared by every tab.
func Banner(err error) string {
	return ErrorBanner.Render(err.Error() + "\n" + Muted.Render("press r to retry"))
}
