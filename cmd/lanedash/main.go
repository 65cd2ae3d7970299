// lanedash is a lane-based arcade game for the terminal: dodge obstacles,
// collect coins and gems, and clear every level.
//
// Usage:
//
//	lanedash play            - Play in this terminal
//	lanedash stats [name]    - Show player statistics and recent runs
//	lanedash levels          - Show the level table of the active config
//	lanedash simulate        - Run the autopilot headless
//	lanedash serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.lanedash/lanedash.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dash/internal/assets"
	"github.com/vovakirdan/lane-dash/internal/config"
	"github.com/vovakirdan/lane-dash/internal/storage"
)

const defaultDBPath = "~/.lanedash/lanedash.db"

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagSprites    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanedash",
	Short: "Lane Dash - a lane-switching arcade game for your terminal",
	Long: `Lane Dash is a terminal arcade game. Switch lanes to catch coins and
gems, grab hearts to heal, and avoid obstacles until every level is cleared.

Available commands:
  play      - Play in this terminal
  stats     - Show player statistics and recent runs
  levels    - Show the level table
  simulate  - Run the autopilot without a terminal
  serve     - Start SSH server for remote play

Examples:
  lanedash play
  lanedash play --difficulty hard --nickname ada
  lanedash stats ada
  lanedash simulate --ticks 100000 --seed 7
  lanedash serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Directory with sprite overrides")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.lanedash/lanedash.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".lanedash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "lanedash.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadGameConfig loads the config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	return config.ApplyPreset(cfg, preset), nil
}

// tickRate returns --fps, falling back to the config.
func tickRate(cfg config.GameConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return max(cfg.TickRate, 1)
}

// loadSprites loads every configured sprite, logging the ones that fail.
func loadSprites(cfg config.GameConfig, logger *log.Logger) *assets.Loader {
	loader := assets.NewLoader(flagSprites, logger)
	loader.LoadAll(cfg)
	return loader
}

// openStore opens the stats database. Failures are logged and return nil,
// so the game runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open stats database, stats will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

