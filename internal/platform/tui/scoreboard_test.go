package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-attackers/internal/shooter"
	"github.com/vovakirdan/space-attackers/internal/storage"
)

func scoresOf(m ScoreboardModel) []int {
	out := make([]int, len(m.scores))
	for i, s := range m.scores {
		out[i] = s.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, score := range []int{300, 100, 200} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: shooter.GameID, Score: score, Name: "ACE", Level: 2}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	press := func(msg tea.KeyMsg) {
		t.Helper()
		next, _ := m.Update(msg)
		nm, ok := next.(ScoreboardModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
		}
		m = nm
	}

	if got := scoresOf(m); !equalInts(got, []int{300, 200, 100}) {
		t.Errorf("best scores = %v, expected [300 200 100]", got)
	}
	if line := m.statsLine(); !strings.Contains(line, "3 games") {
		t.Errorf("statsLine() = %q, expected 3 games", line)
	}

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if got := scoresOf(m); !equalInts(got, []int{200, 100, 300}) {
		t.Errorf("recent scores = %v, expected [200 100 300]", got)
	}

	press(tea.KeyMsg{Type: tea.KeyTab})
	if m.gameID() != shooter.FireworksID {
		t.Fatalf("gameID() = %q, expected %q", m.gameID(), shooter.FireworksID)
	}
	if len(m.scores) != 0 || !strings.Contains(m.body(), "No scores") {
		t.Errorf("fireworks board = %v, expected empty", m.scores)
	}

	press(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.gameID() != shooter.GameID {
		t.Errorf("gameID() = %q after shift+tab, expected %q", m.gameID(), shooter.GameID)
	}

	press(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("IsGoingBack() = %v, IsQuitting() = %v, expected back only", m.IsGoingBack(), m.IsQuitting())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if len(m.scores) != 0 || m.err != nil {
		t.Errorf("scores = %v, err = %v, expected empty", m.scores, m.err)
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}
}
