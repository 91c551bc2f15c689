package adapter_bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editor's own bindings. Everything else goes to the viewport.
type KeyMap struct {
	Save           key.Binding
	NextTheme      key.Binding
	FontUp         key.Binding
	FontDown       key.Binding
	SaveTheme      key.Binding
	Copy           key.Binding
	Reload         key.Binding
	ToggleLineNums key.Binding
	Quit           key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:           key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextTheme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		FontUp:         key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger font")),
		FontDown:       key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller font")),
		SaveTheme:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save default theme")),
		Copy:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Reload:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		ToggleLineNums: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "line numbers")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
