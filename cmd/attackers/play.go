package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/platform/tui"
	"github.com/vovakirdan/space-attackers/internal/registry"
	"github.com/vovakirdan/space-attackers/internal/shooter"
)

var (
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, Space Attackers by default.

Controls:
  Arrows     - Fly
  Space      - Fire
  Z          - Bullet time
  M          - Toggle music (menu)
  Esc        - Self destruct / back
  Ctrl+S     - Screenshot
  Ctrl+C     - Quit

Difficulty options:
  easy   - More health and bullet time, slower enemy fire
  normal - The configured curve
  hard   - Start at level 3 with less health
  fixed  - Stay on level 5

Examples:
  attackers play
  attackers play --difficulty hard
  attackers play --config ./shooter.yaml --watch
  attackers play fireworks`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'attackers list' to see available games.")
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fail("--watch needs --config")
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	logger, logFile, err := openLog()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := newGame(gameID, registry.Env{Log: logger, Store: store, Config: cfg})
	if err != nil {
		fail("creating game: %v", err)
	}

	opts := tui.Options{
		Runtime:    runtimeConfig(cfg),
		HoldWindow: holdWindow(cfg),
		Log:        logger,
	}

	if flagWatch {
		w, err := config.NewWatcher(flagConfig, logger)
		if err != nil {
			fail("%v", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)
		opts.Updates = w.Updates()
	}

	logger.Info("starting", "game", gameID, "preset", cfg.Game.Preset, "fps", cfg.Game.TickRate)
	if err := tui.Run(game, opts); err != nil {
		fail("running game: %v", err)
	}
}
