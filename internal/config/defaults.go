package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Video: VideoConfig{
			Width:  640,
			Height: 480,
		},
		Game: GameConfig{
			TickRate: 60,
			Music:    true,
			Preset:   DifficultyNormal,
		},
		Player: PlayerConfig{
			Health:        500,
			CooldownMS:    300,
			BulletDamage:  25,
			GuidedDamage:  100,
			Acceleration:  500,
			MaxSpeed:      500,
			MinSpeed:      10,
			YMargin:       32,
			LevelUpHeal:   250,
			ContactDamage: 100,
		},
		Enemy: EnemyConfig{
			Health:        100,
			Score:         100,
			ContactDamage: 200,
			EasyCooldown:  1.5,
			HardCooldown:  0.3,
		},
		BulletTime: BulletTimeConfig{
			Initial: 1000,
			Min:     500,
			Max:     5000,
			Adder:   250,
		},
		Effects: EffectsConfig{
			ExplosionCapacity: 500,
			SmokeCapacity:     300,
		},
		Sprites: SpritesConfig{
			Charset: "unicode",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Highscores: HighscoresConfig{
			File: "highscores.txt",
		},
		Difficulty: DifficultyConfig{
			StartLevel:    1,
			CooldownScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
