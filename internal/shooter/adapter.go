package shooter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/render"
	"github.com/vovakirdan/space-attackers/internal/highscore"
	"github.com/vovakirdan/space-attackers/internal/registry"
	"github.com/vovakirdan/space-attackers/internal/storage"
)

// GameID is the registry id of the shooter.
const GameID = "attackers"

func init() {
	registry.Register(GameID, func() registry.Game { return NewAttackers() })
	registry.Register(FireworksID, func() registry.Game { return NewFireworksDemo() })
}

// Attackers runs the shooter behind the registry.Game interface. Each
// Reset starts a new session at the splash screen; the game is over when
// the player quits from the menu.
type Attackers struct {
	env        registry.Env
	configured bool
	clock      engine.Clock

	ctx    *engine.Context
	res    *Resources
	game   *Shooter
	screen *render.Screen
	sound  audio.SoundServer

	running bool
}

// NewAttackers creates an unconfigured shooter. Without Configure it
// runs on the default configuration and keeps highscores in memory.
func NewAttackers() *Attackers {
	return &Attackers{}
}

func (a *Attackers) ID() string    { return GameID }
func (a *Attackers) Title() string { return "Space Attackers" }

// Configure supplies the logger, score store and configuration.
func (a *Attackers) Configure(env registry.Env) {
	a.env = env
	a.configured = true
}

func (a *Attackers) config() config.ShooterConfig {
	if a.configured {
		return a.env.Config
	}
	cfg := config.DefaultShooterConfig()
	cfg.Highscores.File = ""
	cfg.Audio.Enabled = false
	return cfg
}

func (a *Attackers) logger() *log.Logger {
	if a.env.Log != nil {
		return a.env.Log
	}
	return engine.NewLogger(io.Discard, log.InfoLevel)
}

// Reset starts a new session.
func (a *Attackers) Reset(rc core.RuntimeConfig) {
	a.shutdown()
	cfg := a.config()
	logger := a.logger()

	seed := rc.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	a.ctx = engine.NewContext(engine.Options{Seed: seed, Clock: a.clock, Logger: logger})

	if a.sound == nil {
		sound, err := audio.New(cfg.Audio.Enabled, cfg.Audio.SampleRate, cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		}
		a.sound = sound
	}

	scores := highscore.New("")
	if cfg.Highscores.File != "" {
		loaded, err := highscore.Load(cfg.Highscores.File)
		if err != nil {
			// Keep the broken file intact; scores of this session stay in memory.
			logger.Error("cannot load highscores", "err", err)
		} else {
			scores = loaded
		}
	}

	var masks *Masks
	var maskErr error
	if cfg.Game.PixelCollision {
		masks, maskErr = LoadMasks(cfg.Sprites.MaskDir)
	}

	a.res = NewResources(a.ctx, cfg, a.sound, scores, masks)
	a.res.OnResult = a.record
	a.screen = render.NewScreen(cfg.Video.Width, cfg.Video.Height, rc.ScreenW, rc.ScreenH, NewSheet(cfg.Sprites.Charset))
	a.game = NewShooter(a.ctx, a.res, a.screen)
	if maskErr != nil {
		a.game.Fail(maskErr)
		a.running = false
		return
	}
	a.running = true
	if err := a.game.Game.Initialize(); err != nil {
		a.game.Fail(err)
		a.running = false
	}
	logger.Info("session started", "session", a.ctx.SessionID, "seed", a.ctx.Rand.Seed())
}

// Step feeds the frame's key transitions to the game and runs one frame.
func (a *Attackers) Step(in core.InputFrame) core.StepResult {
	if a.game == nil || !a.running {
		return core.StepResult{State: a.State()}
	}
	for _, k := range in.Keys {
		if k.Up {
			a.ctx.Events.Push(engine.KeyUp(k.Key))
		} else {
			a.ctx.Events.Push(engine.KeyDown(k.Key))
		}
	}
	if in.Has(core.ActionQuit) {
		a.ctx.Events.Push(engine.Event{Type: engine.EventQuit})
	}
	running, err := a.game.Execute()
	if err != nil {
		a.ctx.Log.Error("session failed", "err", err)
	}
	a.running = running
	return core.StepResult{State: a.State()}
}

// Render copies the last frame into dst.
func (a *Attackers) Render(dst *core.Screen) {
	if a.screen == nil {
		return
	}
	a.screen.Resize(dst.Width(), dst.Height())
	a.screen.Snapshot(dst)
}

// State reports the running score; once the player has died it is the
// final score of the last game.
func (a *Attackers) State() core.GameState {
	if a.game == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:    engine.Value(a.ctx.Props, propPlayer, "Score", 0),
		GameOver: !a.running,
	}
	if l := a.game.Level(); l != nil && l.Running() {
		st.Score = l.Score()
		st.Level = l.Level()
	}
	return st
}

// Err returns the error that stopped the session, if any.
func (a *Attackers) Err() error {
	if a.game == nil {
		return nil
	}
	return a.game.Err()
}

// Shooter returns the running game, or nil before Reset.
func (a *Attackers) Shooter() *Shooter { return a.game }

// ApplyConfig takes the settings that are safe to change mid-game.
func (a *Attackers) ApplyConfig(cfg config.ShooterConfig) {
	a.env.Config.Input = cfg.Input
	a.env.Config.Game.Music = cfg.Game.Music
	if a.ctx == nil {
		return
	}
	if engine.Value(a.ctx.Props, propGame, "Music", true) != cfg.Game.Music {
		a.ctx.Props.Set(propGame, "Music", cfg.Game.Music)
		if cfg.Game.Music {
			a.sound.FadeInMusic(musicFade)
		} else {
			a.sound.FadeOutMusic(musicFade)
		}
	}
	a.ctx.Log.Info("config applied", "music", cfg.Game.Music, "hold_ms", cfg.Input.HoldMS)
}

// record copies a highscore entry into the score history.
func (a *Attackers) record(e highscore.Entry) {
	if a.env.Store == nil {
		return
	}
	_, err := a.env.Store.SaveScore(storage.ScoreEntry{
		GameID:    GameID,
		Score:     e.Score,
		Name:      e.Name,
		Level:     e.Level,
		Accuracy:  e.Accuracy,
		SessionID: a.ctx.SessionID.String(),
	})
	if err != nil {
		a.ctx.Log.Error("cannot record score", "err", err)
	}
}

func (a *Attackers) shutdown() {
	if a.game != nil {
		a.game.Close()
		a.game = nil
	}
}

// Close stops background work and releases the audio device.
func (a *Attackers) Close() error {
	a.shutdown()
	if a.sound == nil {
		return nil
	}
	err := a.sound.Close()
	a.sound = nil
	return err
}
