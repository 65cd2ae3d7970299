package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dash/internal/config"
)

var flagDumpConfig bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print the levels of the active config after the difficulty preset is
applied. With --dump the whole config is printed as YAML, ready to be
saved to ~/.lanedash/configs/lanedash.yaml and edited.

Examples:
  lanedash levels
  lanedash levels --difficulty hard
  lanedash levels --dump > lanedash.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagDumpConfig, "dump", false, "Print the full config as YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	if flagDumpConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Printf("Levels (%d lanes, %d lives)\n", cfg.Lanes.Count, cfg.Player.StartingLives)
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-11s  %-6s  %-5s  %-5s  %-5s  %s\n", "Level", "Goal", "Speed", "Spawn", "Coin", "Gem", "Heart", "Obstacle")
	fmt.Printf("  %-5s  %-5s  %-11s  %-6s  %-5s  %-5s  %-5s  %s\n", "-----", "----", "-----", "-----", "----", "---", "-----", "--------")
	for _, l := range cfg.Levels {
		w := l.SpawnWeights
		fmt.Printf("  %-5d  %-5d  %-11s  %-6s  %-5s  %-5s  %-5s  %s\n",
			l.Level,
			l.CoinsToWin,
			fmt.Sprintf("%.1f-%.1f", l.MinSpeed, l.MaxSpeed),
			percent(l.SpawnChance),
			percent(w.Coin),
			percent(w.Gem),
			percent(w.Heart),
			percent(w.ObstacleShare()),
		)
	}
	return nil
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
