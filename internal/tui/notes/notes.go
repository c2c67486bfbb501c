// Package notes is the view orchestrator: it owns the notes snapshot and
// the current view mode, turns UI intents into service calls, and rebuilds
// the rendered list after every confirmed mutation. The snapshot is always a
// complete copy of the server state for the requested view; mutations are
// never patched in locally.
package notes

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sintya/dinote/internal/api"
	"github.com/sintya/dinote/internal/cache"
	"github.com/sintya/dinote/internal/note"
	"github.com/sintya/dinote/internal/state"
	"github.com/sintya/dinote/internal/tui/notes/submodels"
	v "github.com/sintya/dinote/internal/views"
	"github.com/sintya/dinote/utils"
)

var maxCacheSizeMB int64 = 50

type NoteListModel struct {
	list          list.Model
	cache         *cache.Cache
	keys          *listKeyMap
	delegateKeys  *delegateKeyMap
	client        api.Service
	formModel     submodels.FormModel
	spin          spinner.Model
	notes         []note.Note
	viewName      string
	preview       string
	pendingDelete DeleteNoteMsg
	width         int
	height        int
	loadSeq       int
	loading       bool
	loaded        bool
	creating      bool
	confirming    bool
}

func NewNoteListModel(
	s *state.State,
	viewName string,
) (*NoteListModel, error) {
	dkeys := newDelegateKeyMap()
	lkeys := newListKeyMap()
	delegate := newItemDelegate(dkeys, viewName)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = v.GetTitleForView(viewName, true)
	l.Styles.Title = titleStyle

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.openNote,
			lkeys.create,
			lkeys.changeView,
		}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	c, err := cache.New(maxCacheSizeMB)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusBannerStyle

	return &NoteListModel{
		list:         l,
		cache:        c,
		keys:         lkeys,
		delegateKeys: dkeys,
		client:       s.Client,
		formModel:    submodels.NewFormModel(),
		spin:         sp,
		viewName:     viewName,
		loadSeq:      1,
		loading:      true,
	}, nil
}

func (m NoteListModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchNotes(m.client, m.viewName, m.loadSeq))
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, fv := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-fv)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case submodels.SubmitMsg:
		// The form validated the draft; route it through the save intent
		// so the create path is identical for every caller.
		return m, func() tea.Msg {
			return SaveNoteMsg{Title: msg.Title, Body: msg.Body}
		}

	case SaveNoteMsg:
		if errs := note.ValidateDraft(msg.Title, msg.Body); !errs.Ok() {
			// Invalid drafts never reach the network.
			return m, m.list.NewStatusMessage(errorStyle("Cannot save: title and content are required"))
		}
		m.creating = false
		m.formModel.Reset()
		return m, tea.Batch(m.createNote(msg), m.spin.Tick)

	case ChangeViewMsg:
		if msg.Mode == m.viewName || !validView(msg.Mode) {
			return m, nil
		}
		m.viewName = msg.Mode
		m.refreshDelegate()
		m.list.Title = v.GetTitleForView(m.viewName, true)
		return m, tea.Batch(m.reload(), m.spin.Tick)

	case ToggleArchiveMsg:
		m.cache.Drop(msg.ID)
		return m, tea.Batch(m.toggleArchive(msg), m.spin.Tick)

	case DeleteNoteMsg:
		m.confirming = true
		m.pendingDelete = msg
		return m, nil

	case NoteClickMsg:
		// Informational: no service call, no snapshot change.
		return m, m.list.NewStatusMessage(statusStyle("Viewing " + msg.Title))

	case notesLoadedMsg:
		if msg.seq != m.loadSeq {
			// A newer reload superseded this response; drop it.
			return m, nil
		}
		m.loading = false
		m.loaded = true
		m.notes = msg.notes
		m.list.Title = v.GetTitleForView(m.viewName, false)
		cmds = append(cmds, m.refreshItems())
		m.handlePreview()

	case loadFailedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.list.Title = v.GetTitleForView(m.viewName, false)
		if !m.loaded {
			// Initial load: there is no previous snapshot to keep.
			m.notes = nil
			cmds = append(cmds, m.refreshItems())
		}
		cmds = append(cmds, m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Failed to load notes: %v — press r to retry", msg.err)),
		))

	case mutationDoneMsg:
		cmds = append(cmds,
			m.list.NewStatusMessage(statusStyle(msg.message)),
			m.reload(),
			m.spin.Tick,
		)

	case mutationFailedMsg:
		m.loading = false
		cmds = append(cmds, m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Failed to %s note: %v", msg.action, msg.err)),
		))

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case m.confirming:
			return m.handleConfirmUpdate(msg)
		case m.creating:
			return m.handleCreationUpdate(msg)
		default:
			_, retCmd = m.handleDefaultUpdate(msg)
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd, retCmd)

	m.handlePreview()
	return m, tea.Batch(cmds...)
}

func (m NoteListModel) handleConfirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		pending := m.pendingDelete
		m.pendingDelete = DeleteNoteMsg{}
		m.cache.Drop(pending.ID)
		return m, tea.Batch(m.deleteNote(pending), m.spin.Tick)
	case "n", "N", "esc":
		// Declined: snapshot and view stay exactly as they were.
		m.confirming = false
		m.pendingDelete = DeleteNoteMsg{}
		return m, m.list.NewStatusMessage(statusStyle("Delete cancelled"))
	}
	return m, nil
}

func (m *NoteListModel) handleCreationUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.toggleCreation()
		return m, nil
	}

	var cmd tea.Cmd
	m.formModel, cmd = m.formModel.Update(msg)
	return m, cmd
}

func (m *NoteListModel) handleDefaultUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.openNote):
		return m, m.openNote()

	case key.Matches(msg, m.keys.toggleTitleBar):
		m.toggleTitleBar()
		return m, nil

	case key.Matches(msg, m.keys.toggleStatusBar):
		m.list.SetShowStatusBar(!m.list.ShowStatusBar())
		return m, nil

	case key.Matches(msg, m.keys.togglePagination):
		m.list.SetShowPagination(!m.list.ShowPagination())
		return m, nil

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return m, nil

	case key.Matches(msg, m.keys.create):
		m.toggleCreation()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.changeView):
		next := v.Next(m.viewName)
		return m, func() tea.Msg {
			return ChangeViewMsg{Mode: next}
		}

	case key.Matches(msg, m.keys.switchToActiveView):
		return m, func() tea.Msg {
			return ChangeViewMsg{Mode: "active"}
		}

	case key.Matches(msg, m.keys.switchToArchivedView):
		return m, func() tea.Msg {
			return ChangeViewMsg{Mode: "archived"}
		}

	case key.Matches(msg, m.keys.reload):
		return m, tea.Batch(m.reload(), m.spin.Tick)

	case key.Matches(msg, m.keys.yank):
		return m, m.yankBody()
	}

	return m, nil
}

func (m NoteListModel) View() string {
	if m.creating {
		modelStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).Padding(0, 1)
		return appStyle.Render(modelStyle.Render(m.formModel.View()))
	}

	var left string
	if len(m.list.Items()) == 0 && !m.loading {
		left = listStyle.Width(m.width / 2).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				m.list.View(),
				m.emptyState(),
			),
		)
	} else {
		left = listStyle.Width(m.width / 2).Render(m.list.View())
	}

	if m.confirming {
		prompt := confirmStyle.Render(fmt.Sprintf(
			"%s\n\nAre you sure you want to delete %q?\n\n%s",
			titleStyle.Render("Delete Note?"),
			m.pendingDelete.Title,
			helpStyle.Render("y: delete  n/esc: cancel"),
		))
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, prompt))
	}

	right := m.preview
	if m.loading {
		right = m.spin.View() + " Loading notes..."
	}

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			MaxWidth(800).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), right)),
	)

	return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, preview))
}

func (m NoteListModel) emptyState() string {
	if m.viewName == "archived" {
		return emptyStateStyle.Render("📭 No archived notes\nArchive a note with A to see it here")
	}
	return emptyStateStyle.Render("📭 No notes yet\nPress C to create your first note")
}

func Run(s *state.State, viewFlag string) error {
	m, err := NewNoteListModel(s, viewFlag)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}

func (m *NoteListModel) handlePreview() {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		m.preview = ""
		return
	}

	n := s.Note()
	if p, exists, err := m.cache.Get(n.ID); err == nil && exists {
		m.preview = p
		return
	}

	w := m.width / 2
	r := utils.RenderMarkdownBody(n.Body, w)

	if err := m.cache.Put(n.ID, r); err != nil {
		m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Error updating cache: %s", err)))
	} else {
		m.preview = r
	}
}

func (m *NoteListModel) refreshItems() tea.Cmd {
	items := buildItems(m.notes, m.viewName)
	cmd := m.list.SetItems(items)
	m.ensureSelectionInBounds()
	return cmd
}

func (m *NoteListModel) refreshDelegate() {
	dkeys := newDelegateKeyMap()
	m.delegateKeys = dkeys
	m.list.SetDelegate(newItemDelegate(dkeys, m.viewName))
}

func (m *NoteListModel) ensureSelectionInBounds() {
	visible := m.list.VisibleItems()
	if idx := m.list.Index(); idx < 0 || idx >= len(visible) {
		m.list.ResetSelected()
	}
}

func (m *NoteListModel) openNote() tea.Cmd {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	n := i.Note()
	color := i.Color()
	return func() tea.Msg {
		return NoteClickMsg{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Color:     color,
			CreatedAt: n.CreatedAt,
			Archived:  n.Archived,
		}
	}
}

func (m *NoteListModel) yankBody() tea.Cmd {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	if err := clipboard.WriteAll(i.Note().Body); err != nil {
		return m.list.NewStatusMessage(errorStyle(fmt.Sprintf("Failed to copy note: %v", err)))
	}
	return m.list.NewStatusMessage(statusStyle("Copied note body to clipboard"))
}

func (m *NoteListModel) toggleTitleBar() {
	show := !m.list.ShowTitle()
	m.list.SetShowTitle(show)
	m.list.SetShowFilter(show)
	m.list.SetFilteringEnabled(show)
}

func (m *NoteListModel) toggleCreation() {
	switch m.creating {
	case true:
		m.creating = false
		m.formModel.Reset()
	case false:
		m.creating = true
		m.formModel.Reset()
	}
}

func validView(view string) bool {
	for _, known := range v.Order {
		if view == known {
			return true
		}
	}
	return false
}
