package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// fakeSound records what the game asked the sound server to do.
type fakeSound struct {
	played  []audio.Sound
	fadeIns int
	fadeOut int
	halts   int
	music   bool
}

func (s *fakeSound) Play(snd audio.Sound) { s.played = append(s.played, snd) }

func (s *fakeSound) FadeInMusic(time.Duration) {
	s.fadeIns++
	s.music = true
}

func (s *fakeSound) FadeOutMusic(time.Duration) {
	s.fadeOut++
	s.music = false
}

func (s *fakeSound) HaltMusic() {
	s.halts++
	s.music = false
}

func (s *fakeSound) MusicPlaying() bool { return s.music }
func (s *fakeSound) Close() error { return nil }

func (s *fakeSound) count(snd audio.Sound) int {
	n := 0
	for _, p := range s.played {
		if p == snd {
			n++
		}
	}
	return n
}

type nopRenderer struct{}

func (nopRenderer) Begin() {}
func (nopRenderer) End() {}
func (nopRenderer) ClearScreen() {}
func (nopRenderer) ScreenSize() (int, int) { return 640, 480 }
func (nopRenderer) DrawSprite(id, frame, x, y int) {}
func (nopRenderer) DrawPixel(x, y int, c mathx.RGBA) {}
func (nopRenderer) DrawLine(x1, y1, x2, y2 int, c mathx.RGBA) {}
func (nopRenderer) FillRect(rc core.Rect, c mathx.RGBA) {}
func (nopRenderer) DrawRect(rc core.Rect, c mathx.RGBA) {}
func (nopRenderer) DrawText(x, y int, s string, c mathx.RGBA) {}
func (nopRenderer) DrawTextCentered(y int, s string, c mathx.RGBA) {}

// nopScript is a game script that ignores everything.
type nopScript struct{}

func (nopScript) Handle(scene.Call) {}

type fixture struct {
	ctx   *engine.Context
	clock *engine.ManualClock
	sound *fakeSound
	res   *Resources
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := engine.NewManualClock()
	ctx := engine.NewContext(engine.Options{Seed: 1, Clock: clock})
	sound := &fakeSound{}
	res := NewResources(ctx, config.DefaultShooterConfig(), sound, nil, nil)
	return &fixture{ctx: ctx, clock: clock, sound: sound, res: res}
}

// newTestLevel returns a loaded level that is not attached to a game.
func newTestLevel(t *testing.T) (*Level, *fixture) {
	t.Helper()
	f := newFixture(t)
	l := NewLevel(f.ctx, f.res)
	if err := l.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return l, f
}

// runScene registers b with a silent game and starts it.
func runScene(t *testing.T, f *fixture, id int, b *scene.Base) *scene.Game {
	t.Helper()
	g := scene.NewGame(f.ctx, nopScript{}, nopRenderer{})
	if err := g.AddScene(id, b); err != nil {
		t.Fatalf("AddScene() error = %v", err)
	}
	if err := g.LoadAndRunScene(id); err != nil {
		t.Fatalf("LoadAndRunScene() error = %v", err)
	}
	return g
}

// frames advances the clock by step before each of n frames.
func frames(t *testing.T, f *fixture, g *scene.Game, n int, step time.Duration) {
	t.Helper()
	for range n {
		f.clock.Advance(step)
		if _, err := g.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}
}

// drainCustom empties the event queue and returns the custom event codes
// found in it.
func drainCustom(ctx *engine.Context) []int {
	var codes []int
	var ev engine.Event
	for ctx.Events.Poll(&ev) {
		if ev.Type == engine.EventUser && ev.Code == engine.CustomEvent {
			codes = append(codes, ev.Data1)
		}
	}
	return codes
}
