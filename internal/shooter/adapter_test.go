package shooter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/registry"
)

type session struct {
	t     *testing.T
	a     *Attackers
	clock *engine.ManualClock
}

func newSession(t *testing.T) *session {
	t.Helper()
	clock := engine.NewManualClock()
	a := NewAttackers()
	a.clock = clock
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	t.Cleanup(func() { a.Close() })
	return &session{t: t, a: a, clock: clock}
}

// step runs one 100 ms frame pressing keys.
func (s *session) step(keys ...core.Key) core.StepResult {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k, false)
	}
	s.clock.Advance(100 * time.Millisecond)
	return s.a.Step(in)
}

func (s *session) until(limit int, what string, cond func() bool) {
	s.t.Helper()
	for range limit {
		if cond() {
			return
		}
		s.step()
	}
	if !cond() {
		s.t.Fatalf("no %s after %d frames", what, limit)
	}
}

func TestAttackersRegistered(t *testing.T) {
	for _, id := range []string{GameID, FireworksID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestAttackersFullGame(t *testing.T) {
	s := newSession(t)
	sh := s.a.Shooter()

	if sh.State() != StateSplashScreen {
		t.Fatalf("State() = %v, expected splash screen", sh.State())
	}
	s.until(100, "menu", func() bool { return sh.Splash().State() == SplashDisplay })

	s.step(core.KeyEnter)
	if sh.State() != StateGame {
		t.Fatalf("State() after enter = %v, expected game", sh.State())
	}
	s.until(30, "gameplay", func() bool { return sh.Level().State() == LevelGame })
	if sh.Splash().Running() {
		t.Error("splash still running during gameplay")
	}

	s.step(core.KeyEscape)
	if !sh.Level().Player().Dead() {
		t.Fatal("escape did not end the game")
	}
	s.until(100, "name entry", func() bool {
		return sh.State() == StateGameOver && sh.GameOver().State() == GameOverDisplay
	})
	if sh.Level().Loaded() {
		t.Error("level still loaded after it ended")
	}
	if res := s.step(); res.State.GameOver {
		t.Error("session reported over at the game over screen")
	}

	s.step('a', 'c', 'e', core.KeyEnter)
	found := false
	for _, e := range s.a.res.Scores.Entries() {
		if e.Name == "ACE" {
			found = true
		}
	}
	if !found {
		t.Error("ACE missing from the highscore table")
	}

	s.until(40, "menu", func() bool {
		return sh.State() == StateSplashScreen && sh.Splash().State() == SplashDisplay
	})
}

func TestAttackersReplay(t *testing.T) {
	s := newSession(t)
	sh := s.a.Shooter()
	s.until(100, "menu", func() bool { return sh.Splash().State() == SplashDisplay })

	for round := range 2 {
		s.step(core.KeyEnter)
		s.until(30, "gameplay", func() bool { return sh.Level().State() == LevelGame })
		if sh.Level().Score() != 0 || sh.Level().Player().Dead() {
			t.Fatalf("round %d: level not reset", round)
		}
		s.step(core.KeyEscape)
		s.until(100, "name entry", func() bool { return sh.GameOver().State() == GameOverDisplay })
		s.step(core.KeyEnter)
		s.until(40, "menu", func() bool {
			return sh.State() == StateSplashScreen && sh.Splash().State() == SplashDisplay
		})
	}
}

func TestAttackersQuitFromMenu(t *testing.T) {
	s := newSession(t)
	sh := s.a.Shooter()
	s.until(100, "menu", func() bool { return sh.Splash().State() == SplashDisplay })

	s.step(core.KeyUp, core.KeyEnter)

	over := false
	for range 20 {
		if s.step().State.GameOver {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("session still running after quit")
	}
	if !engine.Value(s.a.ctx.Props, propGame, "Quit", false) {
		t.Error("Game.Quit not set")
	}
}

func TestAttackersHelpAndBack(t *testing.T) {
	s := newSession(t)
	sh := s.a.Shooter()
	s.until(100, "menu", func() bool { return sh.Splash().State() == SplashDisplay })

	s.step(core.KeyDown, core.KeyDown, core.KeyEnter)
	if sh.State() != StateHelp {
		t.Fatalf("State() = %v, expected help", sh.State())
	}
	s.until(30, "help", func() bool { return sh.Help().State() == HelpDisplay })

	s.step(core.KeyEscape)
	s.until(30, "menu", func() bool {
		return sh.State() == StateSplashScreen && sh.Splash().State() == SplashDisplay
	})
}

func TestAttackersQuitAction(t *testing.T) {
	s := newSession(t)
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	res := s.a.Step(in)
	if !res.State.GameOver {
		t.Error("quit action did not end the session")
	}
}

func TestAttackersRender(t *testing.T) {
	s := newSession(t)
	s.step()

	dst := core.NewScreen(80, 24)
	s.a.Render(dst)
	if dst.Width() != 80 || dst.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", dst.Width(), dst.Height())
	}
}

func TestFireworksDemo(t *testing.T) {
	d := NewFireworksDemo()
	d.clock = engine.NewManualClock()
	d.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	defer d.Close()

	if !d.Running() {
		t.Fatal("Running() = false after Reset()")
	}
	in := core.NewInputFrame()
	if res := d.Step(in); res.State.GameOver {
		t.Fatal("demo over after one frame")
	}

	in.Press(core.KeyEscape, false)
	if res := d.Step(in); !res.State.GameOver {
		t.Error("escape did not end the demo")
	}
	if d.Running() {
		t.Error("worker still running after the demo ended")
	}
}

func TestAttackersMaskLoading(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    []byte
		wantErr bool
	}{
		{"no mask files", "", nil, false},
		{"corrupt bitmap", "player.bmp", []byte("not a bitmap"), true},
		{"corrupt png", "enemy-green.png", []byte("\x89PNG garbage"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				if err := os.WriteFile(filepath.Join(dir, tt.file), tt.data, 0o644); err != nil {
					t.Fatalf("WriteFile() error = %v", err)
				}
			}
			cfg := config.DefaultShooterConfig()
			cfg.Audio.Enabled = false
			cfg.Highscores.File = ""
			cfg.Game.PixelCollision = true
			cfg.Sprites.MaskDir = dir

			a := NewAttackers()
			a.clock = engine.NewManualClock()
			a.Configure(registry.Env{Config: cfg})
			a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
			defer a.Close()

			res := a.Step(core.NewInputFrame())
			err := a.Err()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Err() = nil, expected a mask error")
				}
				if !strings.Contains(err.Error(), tt.file) {
					t.Errorf("Err() = %v, expected it to name %s", err, tt.file)
				}
				if !res.State.GameOver {
					t.Error("session kept running after the mask failed to load")
				}
				return
			}
			if err != nil {
				t.Errorf("Err() = %v, expected nil", err)
			}
			if res.State.GameOver {
				t.Error("session stopped without mask files")
			}
		})
	}
}
