package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-attackers/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with as YAML, after the
config file search and the global flags are applied.

Save the output to ~/.attackers/configs/shooter.yaml to customize it.

Examples:
  attackers config
  attackers config --difficulty easy
  attackers config --defaults > shooter.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
