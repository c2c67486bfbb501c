package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/sintya/dinote/internal/note"
)

const snippetLen = 60

type ListItem struct {
	note  note.Note
	color string
	tasks note.TaskCounts
}

func (i ListItem) Title() string {
	return colorSwatch(i.color) + " " + i.note.Title
}

func (i ListItem) Description() string {
	description := ""

	if ts := note.CreatedAtDisplay(i.note.CreatedAt); ts != "" {
		description += ts
	}

	if snippet := note.Snippet(i.note.Body, snippetLen); snippet != "" {
		if description != "" {
			description += " • "
		}
		description += snippet
	}

	if total := i.tasks.Total(); total > 0 {
		description += fmt.Sprintf(" • %d/%d tasks", i.tasks.Done, total)
	}

	return description
}

func (i ListItem) FilterValue() string {
	return strings.Join([]string{i.note.Title, i.note.Body}, " ")
}

func (i ListItem) Note() note.Note {
	return i.note
}

func (i ListItem) Color() string {
	return i.color
}

// buildItems turns the unfiltered snapshot into list rows for the given view
// mode. Colors are positional over the snapshot, assigned before filtering,
// so they match what a grid rendering of the full snapshot would show.
func buildItems(snapshot []note.Note, viewName string) []list.Item {
	wantArchived := viewName == "archived"

	var items []list.Item
	for idx, n := range snapshot {
		color := note.ColorFor(idx)
		if n.Archived != wantArchived {
			continue
		}
		items = append(items, ListItem{
			note:  n,
			color: color,
			tasks: note.CountTasks(n.Body),
		})
	}

	return items
}
