// Package config provides YAML-based configuration loading and difficulty
// management for Space Attackers.
package config

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Video      VideoConfig      `yaml:"video"`
	Game       GameConfig       `yaml:"game"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	BulletTime BulletTimeConfig `yaml:"bullet_time"`
	Effects    EffectsConfig    `yaml:"effects"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Highscores HighscoresConfig `yaml:"highscores"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VideoConfig is the size of the simulated world in pixels.
type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig holds loop and session settings.
type GameConfig struct {
	TickRate       int              `yaml:"tick_rate"`
	Seed           int64            `yaml:"seed"` // 0 = time based
	Music          bool             `yaml:"music"`
	Preset         DifficultyPreset `yaml:"preset"`
	PixelCollision bool             `yaml:"pixel_collision"`
	Immortal       bool             `yaml:"immortal"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Health        int     `yaml:"health"`
	CooldownMS    int     `yaml:"cooldown_ms"`
	BulletDamage  int     `yaml:"bullet_damage"`
	GuidedDamage  int     `yaml:"guided_damage"`
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinSpeed      float64 `yaml:"min_speed"`
	YMargin       int     `yaml:"y_margin"`
	LevelUpHeal   int     `yaml:"level_up_heal"`
	ContactDamage int     `yaml:"contact_damage"` // taken when rammed
}

// EnemyConfig defines enemy planes.
type EnemyConfig struct {
	Health        int     `yaml:"health"`
	Score         int     `yaml:"score"`
	ContactDamage int     `yaml:"contact_damage"` // taken when ramming the player
	EasyCooldown  float64 `yaml:"easy_cooldown"`
	HardCooldown  float64 `yaml:"hard_cooldown"`
}

// BulletTimeConfig defines the slow-motion budget in milliseconds.
type BulletTimeConfig struct {
	Initial int `yaml:"initial"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Adder   int `yaml:"adder"`
}

// EffectsConfig sizes the particle pools.
type EffectsConfig struct {
	ExplosionCapacity int  `yaml:"explosion_capacity"`
	SmokeCapacity     int  `yaml:"smoke_capacity"`
	Trails            bool `yaml:"trails"`
}

// SpritesConfig selects sprite art and optional collision mask images.
type SpritesConfig struct {
	Charset string `yaml:"charset"` // "unicode" or "ascii"
	MaskDir string `yaml:"mask_dir"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after the last repeat.
	HoldMS int `yaml:"hold_ms"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// HighscoresConfig locates the highscore file.
type HighscoresConfig struct {
	File string `yaml:"file"`
}

// DifficultyConfig scales the difficulty curve.
type DifficultyConfig struct {
	StartLevel    int     `yaml:"start_level"`
	CooldownScale float64 `yaml:"cooldown_scale"` // multiplies enemy fire cooldowns
	FixedLevel    bool    `yaml:"fixed_level"`    // clearing a wave does not advance the level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
