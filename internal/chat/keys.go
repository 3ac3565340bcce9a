package chat

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send key.Binding
	Blur key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("ctrl+s", "alt+enter"),
			key.WithHelp("ctrl+s", "send"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
