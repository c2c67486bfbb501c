package submodels

type SubmitButton struct {
	focused bool
}

func NewSubmitButton() SubmitButton {
	return SubmitButton{}
}

func (b *SubmitButton) Focus() {
	b.focused = true
}

func (b *SubmitButton) Blur() {
	b.focused = false
}

func (b SubmitButton) View() string {
	return "[ Save Note ]"
}
