package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save     key.Binding
	Focus    key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Edit     key.Binding
	AddRow   key.Binding
	DelRow   key.Binding
	Detach   key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Back:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev field")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next field")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		AddRow:   key.NewBinding(key.WithKeys("+", "a"), key.WithHelp("+", "add row")),
		DelRow:   key.NewBinding(key.WithKeys("-", "d"), key.WithHelp("-", "remove row")),
		Detach:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "drop image")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "left", "h"), key.WithHelp("←/pgup", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "right", "l"), key.WithHelp("→/pgdn", "next page")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Focus, k.Edit, k.AddRow, k.DelRow, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Focus, k.Back, k.Help, k.Quit},
		{k.Up, k.Down, k.Left, k.Right, k.Edit},
		{k.AddRow, k.DelRow, k.Detach},
		{k.PrevPage, k.NextPage},
	}
}
