package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
	"github.com/vovakirdan/space-attackers/internal/highscore"
)

// Shared particle systems.
const (
	psExplosion = iota + 1
	psSmoke
)

// Resources are the services and assets shared by every scene of a session.
type Resources struct {
	Config     config.ShooterConfig
	Difficulty *config.DifficultyManager
	Sound      audio.SoundServer
	Masks      *Masks
	Scores     *highscore.List

	// OnResult, if set, receives every entry the game-over screen records.
	OnResult func(highscore.Entry)

	// Systems is touched by the ambient worker, hence the locked registry.
	Systems *engine.SyncRegistry[int, *particle.System]
}

// NewResources wires the shared resources. A nil sound server is silent
// and nil masks disable pixel collision.
func NewResources(ctx *engine.Context, cfg config.ShooterConfig, sound audio.SoundServer, scores *highscore.List, masks *Masks) *Resources {
	if sound == nil {
		sound = &audio.Silent{}
	}
	if scores == nil {
		scores = highscore.New("")
	}
	return &Resources{
		Config:     cfg,
		Difficulty: config.NewDifficultyManager(cfg),
		Sound:      sound,
		Masks:      masks,
		Scores:     scores,
		Systems: engine.NewSyncRegistry(func(id int) *particle.System {
			if id == psSmoke {
				return NewSmokeSystem(ctx, cfg.Effects.SmokeCapacity)
			}
			return NewExplosionSystem(ctx, cfg.Effects.ExplosionCapacity, cfg.Effects.Trails)
		}),
	}
}
