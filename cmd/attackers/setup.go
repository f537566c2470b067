package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/registry"
	"github.com/vovakirdan/space-attackers/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// parsePreset checks a difficulty preset name.
func parsePreset(name string) (config.DifficultyPreset, error) {
	p := config.DifficultyPreset(name)
	switch p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// loadConfig loads the configuration and applies a difficulty preset. The
// flag wins over the file; a file preset of normal keeps the file's own
// difficulty section.
func loadConfig(difficulty string) (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := cfg.Game.Preset
	if difficulty != "" {
		preset = config.DifficultyPreset(difficulty)
	}
	if preset != "" && (difficulty != "" || preset != config.DifficultyNormal) {
		p, err := parsePreset(string(preset))
		if err != nil {
			return cfg, err
		}
		config.ApplyShooterPreset(&cfg, p)
	}

	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	return cfg, nil
}

// openLog returns the logger for terminal sessions. Logs never go to the
// terminal the game draws on.
func openLog() (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	if flagLog == "" {
		return engine.NewLogger(io.Discard, level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return engine.NewLogger(f, level), f, nil
}

// openStore opens the score history. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.ShooterConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
		Seed:     cfg.Game.Seed,
	}
}

// newGame creates and configures a registered game.
func newGame(id string, env registry.Env) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		c.Configure(env)
	}
	return game, nil
}

func holdWindow(cfg config.ShooterConfig) time.Duration {
	return time.Duration(cfg.Input.HoldMS) * time.Millisecond
}
