// attackers is a terminal space shooter with bullet time.
//
// Usage:
//
//	attackers play [game]      - Play (default: attackers)
//	attackers menu             - Pick a game interactively
//	attackers list             - List available games
//	attackers serve            - Start SSH server for remote play
//	attackers scores [game]    - Show high scores
//	attackers config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.attackers/scores.db)
//	--config <path>  - Use a specific configuration file
//	--log <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/space-attackers/internal/shooter"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "attackers",
	Short: "Space Attackers - shoot down the invasion in your terminal",
	Long: `Space Attackers is a vertical shooter for the terminal. Waves of
enemies grow with every level; hold z to slow time down while your
bullet time energy lasts.

Available commands:
  play     - Play a game directly
  menu     - Interactive game picker menu
  list     - Show all available games
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  attackers play
  attackers play --difficulty hard
  attackers menu
  attackers serve --ssh :2222
  attackers scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.attackers/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
