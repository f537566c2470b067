package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/space-attackers/internal/config"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    config.DifficultyPreset
		wantErr bool
	}{
		{"easy", config.DifficultyEasy, false},
		{"fixed", config.DifficultyFixed, false},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePreset(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePreset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePreset() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		difficulty string
		fps        int
		startLevel int
		health     int
		tickRate   int
		wantErr    bool
	}{
		{"file preset", "game:\n  preset: hard\n", "", 0, 3, 400, 60, false},
		{"flag beats file", "game:\n  preset: hard\n", "easy", 0, 1, 750, 60, false},
		{"normal keeps file curve", "difficulty:\n  start_level: 4\n", "", 0, 4, 500, 60, false},
		{"fps flag", "game:\n  tick_rate: 30\n", "", 25, 1, 500, 25, false},
		{"unknown preset", "game:\n  preset: insane\n", "", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shooter.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			flagConfig, flagFPS, flagSeed = path, tt.fps, 0
			t.Cleanup(func() { flagConfig, flagFPS = "", 0 })

			cfg, err := loadConfig(tt.difficulty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Difficulty.StartLevel != tt.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Difficulty.StartLevel, tt.startLevel)
			}
			if cfg.Player.Health != tt.health {
				t.Errorf("Player.Health = %d, expected %d", cfg.Player.Health, tt.health)
			}
			if cfg.Game.TickRate != tt.tickRate {
				t.Errorf("TickRate = %d, expected %d", cfg.Game.TickRate, tt.tickRate)
			}
		})
	}
}
