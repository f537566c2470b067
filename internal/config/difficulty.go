package config

import (
	"math"

	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// InitialLevelForPreset returns the level a new game starts on.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 3
	case DifficultyFixed:
		return 5
	default:
		return 1
	}
}

// CooldownScaleForPreset returns the enemy fire cooldown multiplier.
func CooldownScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Game.Preset = preset
	cfg.Difficulty.StartLevel = InitialLevelForPreset(preset)
	cfg.Difficulty.CooldownScale = CooldownScaleForPreset(preset)
	cfg.Difficulty.FixedLevel = IsFixedPreset(preset)

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 750
		cfg.BulletTime.Initial = 2000
	case DifficultyHard:
		cfg.Player.Health = 400
	}
}

// DifficultyManager derives per-level tuning from the configuration.
type DifficultyManager struct {
	cfg    DifficultyConfig
	player PlayerConfig
	enemy  EnemyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg ShooterConfig) *DifficultyManager {
	scale := cfg.Difficulty.CooldownScale
	if scale <= 0 {
		scale = 1
	}
	d := &DifficultyManager{cfg: cfg.Difficulty, player: cfg.Player, enemy: cfg.Enemy}
	d.cfg.CooldownScale = scale
	return d
}

// StartLevel returns the first level of a game.
func (d *DifficultyManager) StartLevel() int {
	return max(d.cfg.StartLevel, 1)
}

// NextLevel returns the level after clearing a wave.
func (d *DifficultyManager) NextLevel(level int) int {
	if d.cfg.FixedLevel {
		return level
	}
	return level + 1
}

// PlayerCooldown returns the minimum milliseconds between player shots.
func (d *DifficultyManager) PlayerCooldown(level int) float64 {
	return float64(d.player.CooldownMS) / (1.0 + math.Min(float64(level)/20, 3.0))
}

// EnemyCooldown returns the seconds between shots for an enemy type.
// Type 0 planes fire slowly; any other type uses the fast cadence.
func (d *DifficultyManager) EnemyCooldown(enemyType, level int) float64 {
	base := d.enemy.EasyCooldown
	if enemyType != 0 {
		base = d.enemy.HardCooldown
	}
	return base * d.cfg.CooldownScale / (0.1 + math.Min(float64(level)/25, 4.0))
}

// EnemyHealth returns the health of a freshly deployed enemy.
func (d *DifficultyManager) EnemyHealth(enemyType, level int) int {
	bonus := mathx.Clamp(float64(level-10)/10, 0.0, 3.0)
	return int(float64(d.enemy.Health) * (1.0 + float64(enemyType)) * (1.0 + bonus))
}

// HardEnemyEvery returns how often a deployment is a fast-firing plane.
func (d *DifficultyManager) HardEnemyEvery(level int) int {
	return 10 - min(level/3, 9)
}
