package notes

import (
	"github.com/charmbracelet/lipgloss"
)

// cardColors maps the service palette names onto terminal colors. The
// palette is cosmetic, assigned positionally at render time, and never sent
// back to the service.
var cardColors = map[string]lipgloss.Color{
	"yellow": lipgloss.Color("#F9E79F"),
	"pink":   lipgloss.Color("#F5B7D0"),
	"blue":   lipgloss.Color("#85C1E9"),
	"green":  lipgloss.Color("#A9DFBF"),
	"purple": lipgloss.Color("#C39BD3"),
	"orange": lipgloss.Color("#F0B27A"),
}

func colorSwatch(name string) string {
	c, ok := cardColors[name]
	if !ok {
		c = lipgloss.Color("#CCC")
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Bold(true).
			Padding(0, 1)

	statusBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	statusStyle = statusBannerStyle.Render

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e74c3c"))

	errorStyle = errorBannerStyle.Render

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224")).
				Padding(0, 0)

	listStyle = lipgloss.NewStyle().
			MarginRight(1).
			Border(lipgloss.NormalBorder(), false, false, false, false).
			BorderForeground(lipgloss.Color("#334455"))

	previewStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455"))

	confirmStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#e74c3c"))

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")).
			Padding(2, 4)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)
