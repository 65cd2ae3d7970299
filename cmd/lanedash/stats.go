package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/storage"
)

var flagRuns int

var statsCmd = &cobra.Command{
	Use:   "stats [nickname]",
	Short: "Show player statistics",
	Long: `Without arguments, list every player ranked by best time.
With a nickname, show that player's statistics and recent runs.

Examples:
  lanedash stats
  lanedash stats ada
  lanedash stats ada --runs 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
}

func runStats(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening stats database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printLeaderboard(store)
	}
	return printPlayer(store, args[0])
}

func printLeaderboard(store *storage.Store) error {
	players, err := store.Players()
	if err != nil {
		return fmt.Errorf("retrieving players: %w", err)
	}

	fmt.Println("Lane Dash - Players")
	fmt.Println()

	if len(players) == 0 {
		fmt.Println("No players recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lanedash play' to start your first run!")
		return nil
	}

	fmt.Printf("  %-5s  %-16s  %-9s  %-5s  %-6s  %-8s  %s\n", "Rank", "Nickname", "Best", "Wins", "Games", "Coins", "Level")
	fmt.Printf("  %-5s  %-16s  %-9s  %-5s  %-6s  %-8s  %s\n", "----", "--------", "----", "----", "-----", "-----", "-----")
	for i, p := range players {
		fmt.Printf("  %-5s  %-16s  %-9s  %-5d  %-6d  %-8s  %d\n",
			humanize.Ordinal(i+1),
			p.Nickname,
			p.BestTimeString(),
			p.Wins,
			p.TotalGames,
			humanize.Comma(int64(p.TotalCoins)),
			p.MaxLevel,
		)
	}
	return nil
}

func printPlayer(store *storage.Store, nickname string) error {
	stats, err := store.PlayerStats(nickname)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	summary, err := store.SummarizeRuns(nickname)
	if err != nil {
		return fmt.Errorf("summarizing runs: %w", err)
	}
	runs, err := store.RecentRuns(nickname, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Player Stats - %s\n", stats.Nickname)
	fmt.Println()
	fmt.Printf("  Best time   %s\n", stats.BestTimeString())
	fmt.Printf("  Games       %d\n", stats.TotalGames)
	fmt.Printf("  Wins        %d (%s)\n", stats.Wins, stats.WinRateString())
	fmt.Printf("  Coins       %s\n", humanize.Comma(int64(stats.TotalCoins)))
	fmt.Printf("  Max level   %d\n", stats.MaxLevel)
	if !summary.LastPlayedAt.IsZero() {
		fmt.Printf("  Last played %s\n", humanize.Time(summary.LastPlayedAt))
		fmt.Printf("  Avg run     %s\n", core.FormatTime(summary.AvgDuration))
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-5s  %-7s  %-9s  %s\n", "Outcome", "Level", "Coins", "Time", "When")
	fmt.Printf("  %-8s  %-5s  %-7s  %-9s  %s\n", "-------", "-----", "-----", "----", "----")
	for _, r := range runs {
		outcome := r.Outcome
		if r.NewRecord {
			outcome += "*"
		}
		fmt.Printf("  %-8s  %-5d  %-7d  %-9s  %s\n", outcome, r.Level, r.TotalCoins, core.FormatTime(r.Duration), humanize.Time(r.CreatedAt))
	}
	if summary.Runs > len(runs) {
		fmt.Printf("\n  ... %d more\n", summary.Runs-len(runs))
	}
	return nil
}
