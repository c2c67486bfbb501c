// Package views renders the view-mode header for the notes list: the
// active/archived partition indicator shared by the TUI and the list
// command.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Order is the cycling order of view modes; "active" is always the start
// mode.
var Order = []string{"active", "archived"}

var titlePrefixMap = map[string]string{
	"active":   "[1] Active",
	"archived": "[2] Archived",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)
	activeViewStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0AF")).
			Padding(0, 1)
	inactiveViewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 1)
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			SetString("│")
	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7")).
			Padding(0, 1)
)

// Next returns the view mode after the given one in cycling order.
func Next(view string) string {
	for i, v := range Order {
		if v == view {
			return Order[(i+1)%len(Order)]
		}
	}
	return Order[0]
}

// GetTitleForView renders the header line with the current view highlighted
// and an optional loading marker.
func GetTitleForView(viewFlag string, loading bool) string {
	var viewStatus []string
	for _, v := range Order {
		prefix := titlePrefixMap[v]
		if v == viewFlag {
			viewStatus = append(viewStatus, activeViewStyle.Render(prefix))
		} else {
			viewStatus = append(viewStatus, inactiveViewStyle.Render(prefix))
		}
	}

	line := fmt.Sprintf("%s %s",
		titleStyle.Render("Notes:"),
		strings.Join(viewStatus, dividerStyle.String()),
	)

	if loading {
		line += loadingStyle.Render("loading…")
	}

	return line
}
