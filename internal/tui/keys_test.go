package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/querie/internal/session"
)

func TestKeyMap_Translate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []session.Key
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []session.Key{session.Press(session.KeyTab)}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []session.Key{session.Press(session.KeyBackTab)}},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, []session.Key{session.Press(session.KeyPageUp)}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, []session.Key{session.Press(session.KeyPageDown)}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []session.Key{session.Press(session.KeyLeft)}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []session.Key{session.Press(session.KeyRight)}},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, []session.Key{session.Press(session.KeyHome)}},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, []session.Key{session.Press(session.KeyHome)}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, []session.Key{session.Press(session.KeyEnd)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []session.Key{session.Press(session.KeyBackspace)}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []session.Key{session.Press(session.KeyDelete)}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []session.Key{session.Press(session.KeyEnter)}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, []session.Key{session.Press(session.KeyClearLine)}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []session.Key{session.Rune(' ')}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, []session.Key{session.Rune('q')}},
		{"multibyte", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, []session.Key{session.Rune('é')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, session.Runes("ab")},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, nil},
		{"unbound", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Translate(tt.msg)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMap_ShortHelpHasDescriptions(t *testing.T) {
	for _, b := range DefaultKeyMap().ShortHelp() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}
