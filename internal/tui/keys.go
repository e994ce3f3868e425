package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Mode      key.Binding
	Toggle    key.Binding
	Clear     key.Binding
	Filter    key.Binding
	Countries key.Binding
	Close     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Reset     key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding
	PanUp     key.Binding
	PanDown   key.Binding
	Help      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Countries: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "countries")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_")),
		Reset:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		PanLeft:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("HJKL", "pan")),
		PanDown:   key.NewBinding(key.WithKeys("shift+down", "J")),
		PanUp:     key.NewBinding(key.WithKeys("shift+up", "K")),
		PanRight:  key.NewBinding(key.WithKeys("shift+right", "L")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Filter, k.Mode, k.Countries, k.ZoomIn, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Filter, k.Clear, k.Mode},
		{k.Countries, k.Close},
		{k.ZoomIn, k.Reset, k.PanLeft},
		{k.Help, k.Quit},
	}
}
