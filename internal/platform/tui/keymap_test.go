package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-attackers/internal/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.KeyBackspace, true},
		{"ctrl+h backspace", tea.KeyMsg{Type: tea.KeyCtrlH}, core.KeyBackspace, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 'z', true},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}, Alt: true}, core.KeyNone, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, core.KeyNone, false},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, core.KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("TranslateKey() = %v, %v, expected %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  core.Key
		want core.Action
	}{
		{core.KeyUp, core.ActionUp},
		{'s', core.ActionDown},
		{core.KeySpace, core.ActionFire},
		{'z', core.ActionSlow},
		{core.KeyEnter, core.ActionConfirm},
		{core.KeyEscape, core.ActionBack},
		{'x', core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := ActionFor(tt.key); got != tt.want {
				t.Errorf("ActionFor() = %v, expected %v", got, tt.want)
			}
		})
	}
}
