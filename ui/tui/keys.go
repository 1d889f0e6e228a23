package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pages    []key.Binding // one per hub.Pages() entry
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Category key.Binding
	Bell     key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pages: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "scripts")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "forum")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "community")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "profile")),
		},
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next page")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev page")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "primary action")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category tab")),
		Bell:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		Up:       key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Down, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Pages,
		{k.Next, k.Prev, k.Activate, k.Category, k.Bell},
		{k.Up, k.Down, k.Help, k.Quit},
	}
}
