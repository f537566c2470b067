package shooter

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
	"github.com/vovakirdan/space-attackers/internal/highscore"
)

// until runs 100 ms frames until cond holds, failing after limit frames.
func until(t *testing.T, f *fixture, g *scene.Game, limit int, what string, cond func() bool) {
	t.Helper()
	for range limit {
		if cond() {
			return
		}
		frames(t, f, g, 1, 100*time.Millisecond)
	}
	if !cond() {
		t.Fatalf("no %s after %d frames", what, limit)
	}
}

func TestSplashIntroThenMenu(t *testing.T) {
	f := newFixture(t)
	s := NewSplash(f.ctx, f.res)
	g := runScene(t, f, SceneIntro, s.Base)

	if s.State() != SplashIntro {
		t.Fatalf("State() = %v, expected INTRO", s.State())
	}
	until(t, f, g, 100, "menu", func() bool { return s.State() == SplashDisplay })

	if n := f.sound.count(audio.IntroDisk); n != 1 {
		t.Errorf("IntroDisk played %d times, expected 1", n)
	}
	if f.sound.fadeIns != 1 {
		t.Errorf("FadeInMusic called %d times, expected 1", f.sound.fadeIns)
	}
	if s.Alpha() != 255 {
		t.Errorf("Alpha() = %d, expected 255", s.Alpha())
	}

	// the intro only plays once
	s.SetRunning(false)
	if err := g.LoadAndRunScene(SceneIntro); err != nil {
		t.Fatalf("LoadAndRunScene() error = %v", err)
	}
	if s.State() != SplashStart {
		t.Errorf("State() on second visit = %v, expected START", s.State())
	}
}

func TestSplashMenu(t *testing.T) {
	f := newFixture(t)
	s := NewSplash(f.ctx, f.res)
	runScene(t, f, SceneIntro, s.Base)
	drainCustom(f.ctx)

	s.keyPressed(core.KeyUp)
	if s.Selection() != MenuQuit {
		t.Errorf("Selection() after up = %d, expected %d", s.Selection(), MenuQuit)
	}
	s.keyPressed(core.KeyDown)
	s.keyPressed(core.KeyDown)
	if s.Selection() != MenuHighscores {
		t.Errorf("Selection() after wrap = %d, expected %d", s.Selection(), MenuHighscores)
	}

	s.keyPressed(core.KeyEnter)
	if got := drainCustom(f.ctx); len(got) != 1 || got[0] != EventHighscores {
		t.Errorf("custom events = %v, expected [%d]", got, EventHighscores)
	}

	s.keyPressed(core.KeyEscape)
	if got := drainCustom(f.ctx); len(got) != 1 || got[0] != EventEndGame {
		t.Errorf("custom events = %v, expected [%d]", got, EventEndGame)
	}
}

func TestMenuEvent(t *testing.T) {
	tests := []struct {
		selection int
		expected  int
	}{
		{MenuNewGame, EventNewGame},
		{MenuHighscores, EventHighscores},
		{MenuHelp, EventHelp},
		{MenuQuit, EventEndGame},
	}

	for _, tt := range tests {
		if got := menuEvent(tt.selection); got != tt.expected {
			t.Errorf("menuEvent(%d) = %d, expected %d", tt.selection, got, tt.expected)
		}
	}
}

func TestSplashMusicToggle(t *testing.T) {
	f := newFixture(t)
	s := NewSplash(f.ctx, f.res)

	s.keyPressed('m')
	if engine.Value(f.ctx.Props, propGame, "Music", true) {
		t.Error("Game.Music still on after m")
	}
	if f.sound.fadeOut != 1 {
		t.Errorf("FadeOutMusic called %d times, expected 1", f.sound.fadeOut)
	}

	s.keyPressed('m')
	if !engine.Value(f.ctx.Props, propGame, "Music", false) {
		t.Error("Game.Music still off after second m")
	}
	if f.sound.fadeIns != 1 {
		t.Errorf("FadeInMusic called %d times, expected 1", f.sound.fadeIns)
	}
}

func TestNameRune(t *testing.T) {
	tests := []struct {
		key core.Key
		r   rune
		ok  bool
	}{
		{'a', 'A', true},
		{'z', 'Z', true},
		{'Q', 'Q', true},
		{'7', '7', true},
		{' ', ' ', true},
		{'-', '-', true},
		{'!', 0, false},
		{'_', 0, false},
		{core.KeyLeft, 0, false},
	}

	for _, tt := range tests {
		r, ok := nameRune(tt.key)
		if r != tt.r || ok != tt.ok {
			t.Errorf("nameRune(%q) = %q, %v, expected %q, %v", rune(tt.key), r, ok, tt.r, tt.ok)
		}
	}
}

func TestGameOverNameEntry(t *testing.T) {
	f := newFixture(t)
	f.ctx.Props.Set(propPlayer, "Score", 1234)
	f.ctx.Props.Set(propPlayer, "Level", 5)
	f.ctx.Props.Set(propPlayer, "Accuracy", 50)

	var results []highscore.Entry
	f.res.OnResult = func(e highscore.Entry) { results = append(results, e) }

	o := NewGameOver(f.ctx, f.res)
	g := runScene(t, f, SceneGameOver, o.Base)
	until(t, f, g, 60, "name entry", func() bool { return o.State() == GameOverDisplay })

	if f.sound.halts != 1 || f.sound.fadeIns != 1 {
		t.Errorf("music halts/fade-ins = %d/%d, expected 1/1", f.sound.halts, f.sound.fadeIns)
	}

	for _, k := range []core.Key{'a', 'c', 'e', '!', ' ', 'x', 'x', 'x', 'x', 'x', 'x', 'x'} {
		o.keyPressed(k)
	}
	if o.Name() != "ACE XXXXXX" {
		t.Errorf("Name() = %q, expected %q", o.Name(), "ACE XXXXXX")
	}

	for range 7 {
		o.keyPressed(core.KeyBackspace)
	}
	if o.Name() != "ACE" {
		t.Errorf("Name() after backspace = %q, expected %q", o.Name(), "ACE")
	}
	if got := engine.Value(f.ctx.Props, propPlayer, "Name", ""); got != "ACE" {
		t.Errorf("Player.Name = %q, expected %q", got, "ACE")
	}

	o.keyPressed(core.KeyEnter)

	if o.State() != GameOverFadeOut {
		t.Errorf("State() = %v, expected FADE_OUT", o.State())
	}
	if len(results) != 1 || results[0] != (highscore.Entry{Name: "ACE", Score: 1234, Level: 5, Accuracy: 50}) {
		t.Errorf("results = %+v, expected one ACE entry", results)
	}
	found := false
	for _, e := range f.res.Scores.Entries() {
		if e.Name == "ACE" && e.Score == 1234 {
			found = true
		}
	}
	if !found {
		t.Error("entry missing from the highscore table")
	}

	until(t, f, g, 20, "end", func() bool { return !o.Running() })
	if o.State() != GameOverEnd {
		t.Errorf("State() = %v, expected END", o.State())
	}
}

func TestHelpPages(t *testing.T) {
	f := newFixture(t)
	h := NewHelp(f.ctx, f.res)
	g := runScene(t, f, SceneHelp, h.Base)
	until(t, f, g, 20, "page 1", func() bool { return h.State() == HelpDisplay })

	// escape is ignored while fading
	h.keyPressed(HelpFadeToPage2, core.KeyEscape)
	if h.State() != HelpDisplay {
		t.Errorf("State() = %v, expected DISPLAY", h.State())
	}

	h.keyPressed(h.State(), core.KeySpace)
	if h.Page() != 1 || h.State() != HelpFadeToPage2 {
		t.Errorf("Page()/State() = %d/%v, expected 1/FADE_TO_PAGE2", h.Page(), h.State())
	}
	until(t, f, g, 20, "page 2", func() bool { return h.State() == HelpDisplayPage2 })

	h.keyPressed(h.State(), core.KeyEnter)
	if h.State() != HelpFadeOut {
		t.Errorf("State() = %v, expected FADE_OUT", h.State())
	}
	until(t, f, g, 20, "end", func() bool { return !h.Running() })
}

func TestHighscoresFireworks(t *testing.T) {
	f := newFixture(t)
	h := NewHighscores(f.ctx, f.res)
	g := runScene(t, f, SceneHighscores, h.Base)
	defer func() {
		if h.Fireworks().Running() {
			h.Fireworks().Stop()
		}
	}()

	until(t, f, g, 20, "display", func() bool { return h.State() == HighscoresDisplay })
	if !h.Fireworks().Running() {
		t.Fatal("fireworks not running on display")
	}

	ev := engine.KeyDown(core.KeySpace)
	h.Handle(scene.Call{Hook: scene.HookKeyDown, State: HighscoresDisplay, Event: &ev})
	frames(t, f, g, 1, 100*time.Millisecond)

	if h.Fireworks().Running() {
		t.Error("fireworks still running while fading out")
	}
	until(t, f, g, 20, "end", func() bool { return !h.Running() })
	if !h.Empty() {
		t.Error("particle system left on screen after exit")
	}
}

func TestFireworksStartStop(t *testing.T) {
	f := newFixture(t)
	fw := NewFireworks(f.ctx, f.res.Systems.Get(psExplosion), 640, 480)

	fw.Start(context.Background())
	fw.Start(context.Background())
	if !fw.Running() {
		t.Fatal("Running() = false after Start()")
	}

	fw.Stop()
	if fw.Running() {
		t.Error("Running() = true after Stop()")
	}

	// a cancelled parent stops the worker too
	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	cancel()
	deadline := time.Now().Add(time.Second)
	for fw.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if fw.Running() {
		t.Error("worker outlived its parent context")
	}
}
