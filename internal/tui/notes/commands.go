package notes

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sintya/dinote/internal/api"
	"github.com/sintya/dinote/internal/note"
)

// fetchNotes loads the full snapshot for a view. The sequence number tags the
// response so the orchestrator can discard results from superseded reloads.
func fetchNotes(client api.Service, view string, seq int) tea.Cmd {
	return func() tea.Msg {
		var (
			ns  []note.Note
			err error
		)

		if view == "archived" {
			ns, err = client.ArchivedNotes()
		} else {
			ns, err = client.Notes()
		}

		if err != nil {
			return loadFailedMsg{seq: seq, view: view, err: err}
		}
		return notesLoadedMsg{seq: seq, view: view, notes: ns}
	}
}

// reload bumps the sequence counter so any in-flight fetch becomes stale.
func (m *NoteListModel) reload() tea.Cmd {
	m.loading = true
	m.loadSeq++
	return fetchNotes(m.client, m.viewName, m.loadSeq)
}

func (m *NoteListModel) createNote(msg SaveNoteMsg) tea.Cmd {
	m.loading = true
	client := m.client
	return func() tea.Msg {
		if _, err := client.Create(msg.Title, msg.Body); err != nil {
			return mutationFailedMsg{action: "create", err: err}
		}
		return mutationDoneMsg{message: "Note created successfully!"}
	}
}

func (m *NoteListModel) deleteNote(msg DeleteNoteMsg) tea.Cmd {
	m.loading = true
	client := m.client
	return func() tea.Msg {
		if err := client.Delete(msg.ID); err != nil {
			return mutationFailedMsg{action: "delete", err: err}
		}
		return mutationDoneMsg{message: "Note deleted successfully!"}
	}
}

func (m *NoteListModel) toggleArchive(msg ToggleArchiveMsg) tea.Cmd {
	m.loading = true
	client := m.client
	return func() tea.Msg {
		if msg.Archived {
			if err := client.Unarchive(msg.ID); err != nil {
				return mutationFailedMsg{action: "unarchive", err: err}
			}
			return mutationDoneMsg{message: "Note unarchived!"}
		}

		if err := client.Archive(msg.ID); err != nil {
			return mutationFailedMsg{action: "archive", err: err}
		}
		return mutationDoneMsg{message: "Note archived!"}
	}
}
