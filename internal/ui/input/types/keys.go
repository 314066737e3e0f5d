package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Toggle      key.Binding
	RangeDown   key.Binding
	RangeUp     key.Binding
	ToggleAll   key.Binding
	DeselectAll key.Binding
	Clear       key.Binding
	Filter      key.Binding
	Sort        key.Binding
	Export      key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle row")),
		RangeDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "select range down")),
		RangeUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "select range up")),
		ToggleAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		DeselectAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "deselect visible")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Export:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view selection")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.Clear, k.Filter, k.Sort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Toggle, k.RangeDown, k.RangeUp, k.ToggleAll, k.DeselectAll, k.Clear},
		{k.Filter, k.Sort, k.Export, k.Help, k.Quit},
	}
}
