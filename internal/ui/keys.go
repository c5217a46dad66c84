package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// selectorKeys are the bindings shown in the selector hint.
type selectorKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Esc   key.Binding
	Quit  key.Binding
}

func newSelectorKeys() selectorKeys {
	return selectorKeys{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:  key.NewBinding(key.WithKeys("backspace", "delete")),
		Esc:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/^C", "exit")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k selectorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.Esc}
}

// FullHelp implements help.KeyMap.
func (k selectorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelp(theme *Theme) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = theme.Key
	h.Styles.ShortDesc = theme.Desc
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	return h
}
