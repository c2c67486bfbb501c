package utils

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RenderMarkdownBody renders a note body as styled terminal markdown. Note
// bodies are plain text as far as the service is concerned, but many contain
// markdown, so the preview treats them as such.
func RenderMarkdownBody(body string, wordWrap int) string {
	if wordWrap < 40 {
		wordWrap = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wordWrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return body
	}

	markdown, err := r.Render(body)
	if err != nil {
		return body // Fall back to the raw body rather than an error pane.
	}

	return markdown
}

// TerminalWidth reports the current terminal width, or the fallback when
// stdout is not a terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func AppendIfNotExists(slice []string, value string) []string {
	for _, v := range slice {
		if v == value {
			return slice
		}
	}
	return append(slice, value)
}
