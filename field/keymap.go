package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
type KeyMap struct {
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding
	ShiftHome, ShiftEnd   key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
	ToggleSign        key.Binding

	Copy, Paste key.Binding
}

// DefaultKeyMap returns portable bindings with ctrl fallbacks for movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),

		// Typed into an empty or fully selected field, '-' starts a negative
		// number instead.
		ToggleSign: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "toggle sign")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Backspace.Keys()) == 0
}
