package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-attackers/internal/platform/tui"
	"github.com/vovakirdan/space-attackers/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  attackers menu
  attackers menu --fps 30
  attackers menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
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

	rc := runtimeConfig(cfg)
	env := registry.Env{Log: logger, Store: store, Config: cfg}

	for {
		menuResult, err := tui.RunMenu(rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := newGame(menuResult.GameID, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		opts := tui.Options{
			Runtime:    rc,
			HoldWindow: holdWindow(cfg),
			Log:        logger,
		}
		if err := tui.Run(game, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
