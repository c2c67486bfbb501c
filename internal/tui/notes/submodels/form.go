package submodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sintya/dinote/internal/note"
)

const (
	title = iota
	body
)

const (
	hotPink  = lipgloss.Color("#0AF")
	darkGray = lipgloss.Color("#767676")
	errRed   = lipgloss.Color("#e74c3c")
)

var (
	formInputStyle = lipgloss.NewStyle().Foreground(hotPink)
	formTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Padding(1, 0)

	continueStyle  = lipgloss.NewStyle().Foreground(darkGray)
	fieldErrStyle  = lipgloss.NewStyle().Foreground(errRed)
	formLimitsHint = continueStyle.Render("Title up to 100 characters, content up to 1000.")
)

// FormModel is the add-note form. Validation runs locally on submit; the
// form stays open with field-level errors until the draft is valid, and only
// then emits the save intent.
type FormModel struct {
	TitleInput textinput.Model
	BodyInput  textarea.Model
	Focused    int
	errs       note.DraftErrors
	btn        SubmitButton
}

// SubmitMsg is emitted by the form once a draft passes validation. The
// orchestrator converts it into the save intent.
type SubmitMsg struct {
	Title string
	Body  string
}

func NewFormModel() FormModel {
	ti := textinput.New()
	ti.Placeholder = "Enter note title"
	ti.Focus()
	ti.CharLimit = note.MaxTitleLen
	ti.Width = 50
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Write your note here..."
	ta.CharLimit = note.MaxBodyLen
	ta.SetWidth(50)
	ta.SetHeight(8)

	return FormModel{
		TitleInput: ti,
		BodyInput:  ta,
		Focused:    title,
		btn:        NewSubmitButton(),
	}
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.btn.focused {
				return m.handleSubmit()
			}
			if m.Focused == title {
				m.nextInput()
			}
			// Enter inside the body inserts a newline; let the
			// textarea handle it below.
		case tea.KeyShiftTab, tea.KeyCtrlP:
			m.prevInput()
		case tea.KeyTab, tea.KeyCtrlN:
			m.nextInput()
		default:
			// Typing clears the inline error for the focused field.
			switch m.Focused {
			case title:
				m.errs.Title = ""
			case body:
				m.errs.Body = ""
			}
		}

		m.TitleInput.Blur()
		m.BodyInput.Blur()
		m.btn.Blur()

		switch m.Focused {
		case title:
			m.TitleInput.Focus()
		case body:
			cmds = append(cmds, m.BodyInput.Focus())
		default:
			m.btn.Focus()
		}
	}

	var cmd tea.Cmd
	m.TitleInput, cmd = m.TitleInput.Update(msg)
	cmds = append(cmds, cmd)

	m.BodyInput, cmd = m.BodyInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m FormModel) View() string {
	var btnView string
	if m.btn.focused {
		btnView = formInputStyle.Render(m.btn.View())
	} else {
		btnView = continueStyle.Render(m.btn.View())
	}

	titleErr := ""
	if m.errs.Title != "" {
		titleErr = fieldErrStyle.Render(m.errs.Title) + "\n"
	}
	bodyErr := ""
	if m.errs.Body != "" {
		bodyErr = fieldErrStyle.Render(m.errs.Body) + "\n"
	}

	return fmt.Sprintf(
		`
%s
%s

%s
%s
%s
%s
%s
%s
%s
%s
`,
		formTitleStyle.Render("Create a new note"),
		formLimitsHint,
		formInputStyle.Width(50).Render("Title"),
		m.TitleInput.View(),
		titleErr,
		formInputStyle.Width(50).Render("Content"),
		m.BodyInput.View(),
		bodyErr,
		btnView,
		continueStyle.Render("tab: next field • esc: cancel"),
	) + "\n"
}

// Errors exposes the current field errors, mainly for tests.
func (m FormModel) Errors() note.DraftErrors {
	return m.errs
}

// Reset clears inputs and errors and refocuses the title field.
func (m *FormModel) Reset() {
	m.TitleInput.SetValue("")
	m.BodyInput.Reset()
	m.errs = note.DraftErrors{}
	m.Focused = title
	m.TitleInput.Focus()
	m.BodyInput.Blur()
	m.btn.Blur()
}

func (m *FormModel) nextInput() {
	switch m.Focused {
	case title:
		m.Focused = body
	case body:
		m.Focused = body + 1
	default:
		m.Focused = title
	}
}

func (m *FormModel) prevInput() {
	switch m.Focused {
	case title:
		m.Focused = body + 1
	case body:
		m.Focused = title
	default:
		m.Focused = body
	}
}

func (m FormModel) handleSubmit() (FormModel, tea.Cmd) {
	draftTitle := m.TitleInput.Value()
	draftBody := m.BodyInput.Value()

	m.errs = note.ValidateDraft(draftTitle, draftBody)
	if !m.errs.Ok() {
		// Refocus the first offending field and stay open.
		if m.errs.Title != "" {
			m.Focused = title
		} else {
			m.Focused = body
		}
		return m, nil
	}

	return m, func() tea.Msg {
		return SubmitMsg{Title: draftTitle, Body: draftBody}
	}
}
