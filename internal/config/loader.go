package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the configuration file looked up in the search path.
const fileName = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.attackers/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ReadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := ReadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := ReadFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ReadFile decodes one configuration file over the defaults.
func ReadFile(path string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects values the game cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Video.Width < 64 || c.Video.Height < 64:
		return fmt.Errorf("video size %dx%d is too small", c.Video.Width, c.Video.Height)
	case c.Game.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", c.Game.TickRate)
	case c.Player.Health <= 0 || c.Enemy.Health <= 0:
		return fmt.Errorf("health values must be positive")
	case c.BulletTime.Min > c.BulletTime.Max:
		return fmt.Errorf("bullet_time min %d exceeds max %d", c.BulletTime.Min, c.BulletTime.Max)
	case c.Effects.ExplosionCapacity < 0 || c.Effects.SmokeCapacity < 0:
		return fmt.Errorf("particle capacities must not be negative")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".attackers", "configs", filename)
}
