package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/querie/internal/session"
)

// KeyMap binds terminal keys to session key codes.
type KeyMap struct {
	Interrupt   key.Binding
	NextArea    key.Binding
	PrevArea    key.Binding
	ResultNewer key.Binding
	ResultOlder key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Submit      key.Binding
	ClearLine   key.Binding
}

// DefaultKeyMap returns the console bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit immediately"),
		),
		NextArea: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevArea: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		ResultNewer: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "newer result"),
		),
		ResultOlder: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "older result"),
		),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run query"),
		),
		ClearLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear query"),
		),
	}
}

// Translate converts a terminal key message into session keys. Pasted or
// buffered input may carry several runes, one key is produced per rune.
// Unbound keys and alt-modified runes produce nothing.
func (km KeyMap) Translate(msg tea.KeyMsg) []session.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return session.Runes(string(msg.Runes))
	case tea.KeySpace:
		return []session.Key{session.Rune(' ')}
	}

	bindings := []struct {
		binding key.Binding
		code    session.KeyCode
	}{
		{km.NextArea, session.KeyTab},
		{km.PrevArea, session.KeyBackTab},
		{km.ResultNewer, session.KeyPageUp},
		{km.ResultOlder, session.KeyPageDown},
		{km.Left, session.KeyLeft},
		{km.Right, session.KeyRight},
		{km.Home, session.KeyHome},
		{km.End, session.KeyEnd},
		{km.Backspace, session.KeyBackspace},
		{km.Delete, session.KeyDelete},
		{km.Submit, session.KeyEnter},
		{km.ClearLine, session.KeyClearLine},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return []session.Key{session.Press(b.code)}
		}
	}
	return nil
}

// ShortHelp returns the bindings listed in the status bar.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.NextArea, km.Submit, km.ResultNewer, km.ResultOlder, km.Interrupt}
}
