package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
	"github.com/vovakirdan/lane-dash/internal/sim"
)

var (
	flagSimTicks   int
	flagSimRestart bool
	flagSimRecord  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Play Lane Dash headless with the built-in autopilot on a fixed-step
loop and print a summary. The same seed always produces the same result,
which makes this handy for tuning level configs.

With --nickname the runs are recorded to that player's stats.

Examples:
  lanedash simulate
  lanedash simulate --ticks 360000 --seed 7 --restart
  lanedash simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Tick budget")
	simulateCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Start a new run after each win or loss")
	simulateCmd.Flags().StringVar(&flagSimRecord, "nickname", "", "Record results to this player's stats")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "lanedash-sim")
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var stats game.StatsRecorder = game.NopStats{}
	if flagSimRecord != "" {
		if store := openStore(logger); store != nil {
			defer store.Close()
			profile, profileErr := store.Profile(flagSimRecord)
			if profileErr != nil {
				logger.Warn("failed to open profile", "nickname", flagSimRecord, "err", profileErr)
			} else {
				stats = profile
			}
		}
	}

	engine := game.NewEngine(cfg, game.BaseViewport(cfg), game.Options{
		Rand:     game.NewSimpleRNG(seed),
		FXRand:   game.NewSimpleRNG(seed ^ 0x5eed),
		Stats:    stats,
		Logger:   logger,
		TickRate: tickRate(cfg),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	rep, err := sim.Run(ctx, engine, sim.Options{
		Ticks:       flagSimTicks,
		AutoRestart: flagSimRestart,
		Logger:      logger,
	})
	if err != nil {
		logger.Warn("simulation interrupted", "err", err)
	}

	rate := tickRate(cfg)
	fmt.Printf("Simulation (seed %d)\n", seed)
	fmt.Println()
	fmt.Printf("  Ticks         %s (%s of play, ran in %s)\n",
		humanize.Comma(int64(rep.Ticks)),
		core.FormatTime(float64(rep.Ticks)/float64(rate)),
		time.Since(start).Round(time.Millisecond),
	)
	fmt.Printf("  Runs          %d (%d won, %d lost)\n", rep.Runs, rep.Wins, rep.Losses)
	fmt.Printf("  Levels        %d cleared, best level %d/%d\n", rep.LevelsCleared, rep.BestLevel, cfg.LevelCount())
	fmt.Printf("  Coins         %s\n", humanize.Comma(int64(rep.Coins)))
	fmt.Printf("  Hits          %d\n", rep.Hits)
	fmt.Printf("  Final         %s, level %d, lives %d, %s\n", rep.Final.Phase, rep.Final.Level, rep.Final.Lives, core.FormatTime(rep.Final.Elapsed))
	fmt.Printf("  State hash    %016x\n", rep.Hash)
	return nil
}
