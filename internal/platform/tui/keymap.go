package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-attackers/internal/core"
)

// KeyMap holds the bindings the platform handles itself. Every other key
// is passed on to the game.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the platform bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// TranslateKey converts a terminal key to a game key.
// Returns false for keys no game reacts to.
func TranslateKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return core.KeyUp, true
	case tea.KeyDown:
		return core.KeyDown, true
	case tea.KeyLeft:
		return core.KeyLeft, true
	case tea.KeyRight:
		return core.KeyRight, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return core.KeyBackspace, true
	case tea.KeyTab:
		return core.KeyTab, true
	case tea.KeySpace:
		return core.KeySpace, true
	case tea.KeyRunes:
		// pasted text and alt combinations are not key presses
		if len(msg.Runes) == 1 && !msg.Alt {
			return core.Key(msg.Runes[0]), true
		}
	}
	return core.KeyNone, false
}

// ActionFor returns the semantic action bound to a game key.
func ActionFor(k core.Key) core.Action {
	switch k {
	case core.KeyUp, 'w':
		return core.ActionUp
	case core.KeyDown, 's':
		return core.ActionDown
	case core.KeyLeft, 'a':
		return core.ActionLeft
	case core.KeyRight, 'd':
		return core.ActionRight
	case core.KeySpace:
		return core.ActionFire
	case 'z':
		return core.ActionSlow
	case core.KeyEnter:
		return core.ActionConfirm
	case core.KeyEscape:
		return core.ActionBack
	case 'p':
		return core.ActionPause
	}
	return core.ActionNone
}
