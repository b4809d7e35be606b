package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title      = lipgloss.NewStyle().Bold(true)
	ViewActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DCE13"))
	View       = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	Header     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	Box        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	Danger     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	Warn       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	Good       = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7AF"))
	Faint      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

// ForFraction colors a utilization fraction: green up to 70%, yellow up
// to 90%, red above.
func ForFraction(v float64) lipgloss.Style {
	switch {
	case v >= 0.9:
		return Danger
	case v >= 0.7:
		return Warn
	default:
		return Good
	}
}
