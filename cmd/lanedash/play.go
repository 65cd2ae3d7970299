package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/platform/tui"
)

var flagNickname string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Lane Dash",
	Long: `Start a game in this terminal.

Controls:
  Left/A, Right/D  - Switch lane
  P/Esc            - Pause
  Enter/Space      - Next level, or play again after a run
  R                - Restart after a run
  Tab              - Player statistics
  Ctrl+S           - Screenshot to ~/.lanedash/screenshots
  Q/Ctrl+C         - Quit

Logs go to ~/.lanedash/lanedash.log.

Examples:
  lanedash play
  lanedash play --nickname ada
  lanedash play --difficulty easy
  lanedash play --config ./my-levels.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagNickname, "nickname", "", "Player nickname (skips the prompt)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs go to a file
	return withLogFile(play)
}

// withLogFile runs fn with the log file as its output, or io.Discard when
// the file cannot be opened. The file is closed before returning.
func withLogFile(fn func(io.Writer) error) error {
	f, err := openLogFile()
	if err != nil {
		return fn(io.Discard)
	}
	defer f.Close()
	return fn(f)
}

func play(logOut io.Writer) error {
	logger, err := newLogger(logOut, "lanedash")
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate(cfg),
			Seed:     flagSeed,
		},
		Store:    store,
		Images:   loadSprites(cfg, logger),
		Logger:   logger,
		Nickname: flagNickname,
	}
	if store != nil && flagNickname == "" {
		if last, lastErr := store.LastNickname(); lastErr == nil {
			opts.SuggestedNickname = last
		}
	}

	logger.Info("starting", "difficulty", flagDifficulty, "levels", cfg.LevelCount(), "width", width, "height", height)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
