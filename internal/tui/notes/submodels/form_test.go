package submodels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(m FormModel, s string) FormModel {
	for _, r := range s {
		m, _ = m.Update(keyPress(r))
	}
	return m
}

func focusButton(m FormModel) FormModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return m
}

func TestSubmitEmptyDraftStaysOpenWithErrors(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = focusButton(m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		if _, ok := cmd().(SubmitMsg); ok {
			t.Fatal("empty draft must not emit a submit message")
		}
	}
	if m.Errors().Title == "" {
		t.Fatal("expected a title error")
	}
	if m.Focused != title {
		t.Fatalf("expected focus back on the title field, got %d", m.Focused)
	}
}

func TestSubmitMissingBodyRefocusesBody(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = typeString(m, "Groceries")
	m = focusButton(m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		if _, ok := cmd().(SubmitMsg); ok {
			t.Fatal("draft without a body must not emit a submit message")
		}
	}
	if m.Errors().Body == "" {
		t.Fatal("expected a body error")
	}
	if m.Focused != body {
		t.Fatalf("expected focus on the body field, got %d", m.Focused)
	}
}

func TestSubmitValidDraftEmitsMessage(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = typeString(m, "Groceries")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "almond milk")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", cmd())
	}
	if msg.Title != "Groceries" || msg.Body != "almond milk" {
		t.Fatalf("submit payload = (%q, %q)", msg.Title, msg.Body)
	}
	if e := m.Errors(); e.Title != "" || e.Body != "" {
		t.Fatalf("expected no errors on valid submit, got %+v", e)
	}
}

func TestTypingClearsFieldError(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = focusButton(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Errors().Title == "" {
		t.Fatal("expected a title error before typing")
	}

	// Focus returned to the title field; typing clears its error.
	m, _ = m.Update(keyPress('G'))
	if m.Errors().Title != "" {
		t.Fatalf("expected the title error to clear, got %q", m.Errors().Title)
	}
}

func TestResetClearsDraftAndErrors(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = typeString(m, "Half-written")
	m = focusButton(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Reset()

	if m.TitleInput.Value() != "" || m.BodyInput.Value() != "" {
		t.Fatal("expected inputs to be cleared")
	}
	if e := m.Errors(); e.Title != "" || e.Body != "" {
		t.Fatalf("expected errors to be cleared, got %+v", e)
	}
	if m.Focused != title {
		t.Fatalf("expected focus on the title field, got %d", m.Focused)
	}
}

func TestViewShowsInlineErrors(t *testing.T) {
	t.Parallel()

	m := NewFormModel()
	m = focusButton(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	if !strings.Contains(view, "Please enter a title") {
		t.Fatal("expected the title error in the rendered form")
	}
}
