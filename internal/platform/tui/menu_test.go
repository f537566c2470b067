package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/registry"
	"github.com/vovakirdan/space-attackers/internal/shooter"
)

func menuKeys(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected MenuModel", next)
		}
		m = nm
	}
	return m
}

func TestMenuResult(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{"first game", []tea.KeyMsg{enter}, MenuResult{GameID: shooter.GameID}},
		{"second game", []tea.KeyMsg{down, enter}, MenuResult{GameID: shooter.FireworksID}},
		{"scoreboard", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true}},
		{"quit", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'q'}}}, MenuResult{Quit: true}},
	}

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuKeys(t, NewMenuModel(cfg), tt.keys...)
			tt.want.Config = cfg
			if got := m.result(); got != tt.want {
				t.Errorf("result() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if got, want := len(m.list.Items()), len(registry.List()); got != want {
		t.Errorf("items = %d, expected %d", got, want)
	}
}

func TestSessionReturnsToMenu(t *testing.T) {
	env := registry.Env{Config: sessionConfig(config.DefaultShooterConfig())}
	m := NewSessionModel(env, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		nm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
		m = nm
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("InGame() = false after selecting the demo")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	for i := 0; i < 10 && m.InGame(); i++ {
		step(TickMsg{})
	}
	if m.InGame() {
		t.Fatal("session still in game after esc")
	}
	if m.quitting {
		t.Error("session quit instead of returning to the menu")
	}

	// a tick left over from the game is dropped by the menu
	step(TickMsg{})
	if m.InGame() || m.quitting {
		t.Error("stale tick changed the session")
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := sessionConfig(config.DefaultShooterConfig())
	if cfg.Audio.Enabled || cfg.Highscores.File != "" {
		t.Errorf("sessionConfig() audio %v file %q, expected silent and in memory", cfg.Audio.Enabled, cfg.Highscores.File)
	}
}
