package notes

import "github.com/sintya/dinote/internal/note"

// Intent messages. These are the contract between the UI surfaces (list
// delegate, form, key handlers) and the orchestrator: key presses only emit
// intents, and every handler consumes intents. Anything able to construct
// one of these can drive the model, which is what the tests do.

// SaveNoteMsg asks for a new note to be created. The payload is already
// validated by the form; the orchestrator still rejects invalid drafts
// before any network call.
type SaveNoteMsg struct {
	Title string
	Body  string
}

// ChangeViewMsg switches between the active and archived partitions.
// Requesting the current mode is a no-op.
type ChangeViewMsg struct {
	Mode string
}

// DeleteNoteMsg asks for a note to be deleted. The orchestrator prompts for
// confirmation before issuing the call.
type DeleteNoteMsg struct {
	ID    string
	Title string
}

// ToggleArchiveMsg archives an active note or unarchives an archived one,
// depending on the Archived flag of the note at the time the intent fired.
type ToggleArchiveMsg struct {
	ID       string
	Archived bool
}

// NoteClickMsg is informational only: no network call, no state change.
type NoteClickMsg struct {
	ID        string
	Title     string
	Body      string
	Color     string
	CreatedAt string
	Archived  bool
}

// Result messages produced by the async commands.

type notesLoadedMsg struct {
	seq   int
	view  string
	notes []note.Note
}

type loadFailedMsg struct {
	seq  int
	view string
	err  error
}

type mutationDoneMsg struct {
	message string
}

type mutationFailedMsg struct {
	action string
	err    error
}
