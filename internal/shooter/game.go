package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// debugSpeeds maps the number keys to game speeds while playing.
var debugSpeeds = map[rune]float64{
	'1': 0.1, '2': 0.3, '3': 0.5, '4': 0.7,
	'5': 1.0, '6': 1.3, '7': 1.5, '8': 1.7,
}

const noteText = "Space Attackers  *  arrows fly, space fires, z slows time down  *  m toggles the music"

// Shooter is the top-level game: it owns the five scenes and moves
// between them as they fade out.
type Shooter struct {
	*scene.Game

	ctx *engine.Context
	res *Resources

	splash     *Splash
	level      *Level
	gameOver   *GameOver
	highscores *Highscores
	help       *Help
}

// NewShooter creates the game drawing through r.
func NewShooter(ctx *engine.Context, res *Resources, r engine.Renderer) *Shooter {
	s := &Shooter{ctx: ctx, res: res}
	s.Game = scene.NewGame(ctx, s, r)
	return s
}

// Initialize registers the scenes and starts at the splash screen.
func (s *Shooter) Initialize() error {
	cfg := s.res.Config
	s.ctx.Props.Set(propVideo, "Width", cfg.Video.Width)
	s.ctx.Props.Set(propVideo, "Height", cfg.Video.Height)
	s.ctx.Props.Set(propGame, "Music", cfg.Game.Music)
	s.ctx.Props.Set(propPlayer, "Name", "")

	s.splash = NewSplash(s.ctx, s.res)
	s.level = NewLevel(s.ctx, s.res)
	s.gameOver = NewGameOver(s.ctx, s.res)
	s.highscores = NewHighscores(s.ctx, s.res)
	s.help = NewHelp(s.ctx, s.res)

	scenes := []struct {
		id int
		b  *scene.Base
	}{
		{SceneIntro, s.splash.Base},
		{SceneGame, s.level.Base},
		{SceneGameOver, s.gameOver.Base},
		{SceneHighscores, s.highscores.Base},
		{SceneHelp, s.help.Base},
	}
	for _, sc := range scenes {
		if err := s.AddScene(sc.id, sc.b); err != nil {
			return err
		}
	}
	if err := s.LoadAndRunScene(SceneIntro); err != nil {
		return err
	}
	s.SetState(StateSplashScreen)
	return nil
}

// Level returns the gameplay scene.
func (s *Shooter) Level() *Level { return s.level }

// Splash returns the menu scene.
func (s *Shooter) Splash() *Splash { return s.splash }

// GameOver returns the name entry scene.
func (s *Shooter) GameOver() *GameOver { return s.gameOver }

// Highscores returns the highscores scene.
func (s *Shooter) Highscores() *Highscores { return s.highscores }

// Help returns the help scene.
func (s *Shooter) Help() *Help { return s.help }

// Close stops background work.
func (s *Shooter) Close() {
	if s.highscores == nil {
		return
	}
	if f := s.highscores.Fireworks(); f != nil && f.Running() {
		f.Stop()
	}
}

func (s *Shooter) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUserEvent:
		if c.State != scene.AnyState {
			s.onUserEvent(c.State, c.Event)
		}
	case scene.HookKeyDown:
		if c.State == StateGame {
			if speed, ok := debugSpeeds[rune(c.Event.Key)]; ok {
				s.ctx.Props.Set(propGame, "Speed", speed)
			}
		}
	case scene.HookPostRender:
		if c.State == StateSplashScreen {
			s.drawNote(c.Renderer)
		}
	}
}

func (s *Shooter) quitting() bool {
	return engine.Value(s.ctx.Props, propGame, "Quit", false)
}

// try records the first failure of a scene operation and stops the game.
func (s *Shooter) try(err error) {
	if err != nil {
		s.Fail(err)
	}
}

func (s *Shooter) onUserEvent(state scene.State, ev *engine.Event) {
	if ev.Code == engine.SceneEvent {
		s.onSceneEvent(state, scene.State(ev.Data1), ev.Data2)
		return
	}
	if ev.Code != engine.CustomEvent || state != StateSplashScreen {
		return
	}
	switch ev.Data1 {
	case EventNewGame:
		s.try(s.SetSceneState(SceneIntro, SplashPreFadeOut))
		s.try(s.LoadAndRunScene(SceneGame))
		s.SetState(StateGame)
	case EventHighscores:
		s.try(s.SetSceneState(SceneIntro, SplashPreFadeOutNoMusic))
		s.try(s.LoadAndRunScene(SceneHighscores))
		s.SetState(StateHighscores)
	case EventHelp:
		s.try(s.SetSceneState(SceneIntro, SplashPreFadeOutNoMusic))
		s.try(s.LoadAndRunScene(SceneHelp))
		s.SetState(StateHelp)
	case EventEndGame:
		s.try(s.SetSceneState(SceneIntro, SplashPreFadeOut))
		s.ctx.Props.Set(propGame, "Quit", true)
	}
}

// onSceneEvent starts the next scene while the current one fades out.
func (s *Shooter) onSceneEvent(state, sceneState scene.State, id int) {
	// The level rebuilds its objects on load, so drop it once it is done.
	if id == SceneGame && sceneState == LevelEnd {
		s.try(s.UnloadScene(SceneGame))
		return
	}

	switch {
	case state == StateSplashScreen && id == SceneIntro && sceneState == SplashEnd:
		if s.quitting() {
			s.SetRunning(false)
		}
	case state == StateHighscores && id == SceneHighscores && sceneState == HighscoresFadeOut,
		state == StateHelp && id == SceneHelp && sceneState == HelpFadeOut:
		s.toSplash(SplashStartNoMusic)
	case state == StateGame && id == SceneGame && sceneState == LevelFadeOut:
		s.try(s.LoadAndRunScene(SceneGameOver))
		s.SetState(StateGameOver)
	case state == StateGameOver && id == SceneGameOver && sceneState == GameOverFadeOut:
		s.toSplash(SplashStart)
	}
}

func (s *Shooter) toSplash(start scene.State) {
	s.try(s.LoadAndRunScene(SceneIntro))
	s.try(s.SetSceneState(SceneIntro, start))
	s.SetState(StateSplashScreen)
}

func (s *Shooter) drawNote(r engine.Renderer) {
	w, h := r.ScreenSize()
	span := w + len(noteText)*glyphW
	x := w - int(s.RealTime()*60)%span
	r.DrawText(x, h-12, noteText, colorInfo)
}
