package notes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// newItemDelegate wires the per-item keys. The delegate never mutates the
// snapshot itself; it only emits intents for the orchestrator to handle.
func newItemDelegate(keys *delegateKeyMap, view string) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		item, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}
		n := item.Note()

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.archive):
				return func() tea.Msg {
					return ToggleArchiveMsg{ID: n.ID, Archived: n.Archived}
				}

			case key.Matches(msg, keys.delete):
				return func() tea.Msg {
					return DeleteNoteMsg{ID: n.ID, Title: n.Title}
				}
			}
		}

		return nil
	}

	var archiveHelp key.Binding
	if view == "archived" {
		archiveHelp = keys.unarchiveHelp
	} else {
		archiveHelp = keys.archive
	}

	d.ShortHelpFunc = func() []key.Binding {
		return []key.Binding{archiveHelp, keys.delete}
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{{archiveHelp, keys.delete}}
	}

	return d
}

type delegateKeyMap struct {
	archive       key.Binding
	unarchiveHelp key.Binding
	delete        key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		archive: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "archive"),
		),
		unarchiveHelp: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "unarchive"),
		),
		delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
	}
}
