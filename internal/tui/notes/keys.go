package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	toggleTitleBar       key.Binding
	toggleStatusBar      key.Binding
	togglePagination     key.Binding
	toggleHelpMenu       key.Binding
	openNote             key.Binding
	create               key.Binding
	changeView           key.Binding
	switchToActiveView   key.Binding
	switchToArchivedView key.Binding
	reload               key.Binding
	yank                 key.Binding
	submitAltView        key.Binding
	exitAltView          key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		create: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		changeView: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "view"),
		),
		switchToActiveView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "active notes"),
		),
		switchToArchivedView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "archived notes"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		yank: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank body"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit (alt view)"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit alt view"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.toggleTitleBar,
		m.toggleStatusBar,
		m.togglePagination,
		m.toggleHelpMenu,
		m.openNote,
		m.create,
		m.changeView,
		m.switchToActiveView,
		m.switchToArchivedView,
		m.reload,
		m.yank,
	}
}
