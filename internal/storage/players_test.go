package storage

import (
	"testing"
)

func TestAbsentPlayerDefaults(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.PlayerStats("nobody")
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}
	if stats.HasBestTime || stats.TotalGames != 0 || stats.Wins != 0 || stats.TotalCoins != 0 {
		t.Errorf("unexpected defaults: %+v", stats)
	}
	if stats.MaxLevel != 1 {
		t.Errorf("max level = %d, expected default 1", stats.MaxLevel)
	}
	if stats.BestTimeString() != "N/A" {
		t.Errorf("best time = %q, expected N/A", stats.BestTimeString())
	}
}

func TestBestTimeRecord(t *testing.T) {
	store := openTestStore(t)
	p, err := store.Profile("ada")
	if err != nil {
		t.Fatal(err)
	}

	record, err := p.SetBestTime(42.0)
	if err != nil {
		t.Fatalf("SetBestTime(42) failed: %v", err)
	}
	if !record {
		t.Error("first win should be a new record")
	}

	record, err = p.SetBestTime(50.0)
	if err != nil {
		t.Fatalf("SetBestTime(50) failed: %v", err)
	}
	if record {
		t.Error("slower win should not be a record")
	}

	stats, _ := p.AllStats()
	if !stats.HasBestTime || stats.BestTime != 42.0 {
		t.Errorf("best time = %v (set=%v), expected 42", stats.BestTime, stats.HasBestTime)
	}
	if stats.BestTimeString() != "0:42.00" {
		t.Errorf("formatted best = %q", stats.BestTimeString())
	}

	if record, _ := p.SetBestTime(40.5); !record {
		t.Error("faster win should be a record")
	}
}

func TestMaxLevelIsMonotonic(t *testing.T) {
	store := openTestStore(t)
	p, _ := store.Profile("ada")

	for _, lv := range []int{3, 2, 5, 4} {
		if err := p.SetMaxLevel(lv); err != nil {
			t.Fatalf("SetMaxLevel(%d) failed: %v", lv, err)
		}
	}

	stats, _ := p.AllStats()
	if stats.MaxLevel != 5 {
		t.Errorf("max level = %d, expected 5", stats.MaxLevel)
	}
}

func TestCounters(t *testing.T) {
	store := openTestStore(t)
	p, _ := store.Profile("ada")

	_ = p.AddCoins(1)
	_ = p.AddCoins(10)
	for range 4 {
		_ = p.IncrementTotalGames()
	}
	_ = p.IncrementWins()

	stats, err := p.AllStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCoins != 11 || stats.TotalGames != 4 || stats.Wins != 1 {
		t.Errorf("counters = %+v", stats)
	}
	if stats.WinRateString() != "25.0%" {
		t.Errorf("win rate = %q, expected 25.0%%", stats.WinRateString())
	}
}

func TestProfilesAreIsolated(t *testing.T) {
	store := openTestStore(t)
	a, _ := store.Profile("ada")
	b, _ := store.Profile("grace")

	_ = a.AddCoins(7)
	if stats, _ := b.AllStats(); stats.TotalCoins != 0 {
		t.Error("coins leaked between profiles")
	}
}

func TestWinRate(t *testing.T) {
	tests := []struct {
		games, wins int
		expected    string
	}{
		{0, 0, "0.0%"},
		{3, 1, "33.3%"},
		{3, 2, "66.7%"},
		{1, 1, "100.0%"},
	}

	for _, tc := range tests {
		p := PlayerStats{TotalGames: tc.games, Wins: tc.wins}
		if got := p.WinRateString(); got != tc.expected {
			t.Errorf("WinRateString(%d/%d) = %q, expected %q", tc.wins, tc.games, got, tc.expected)
		}
	}
}

func TestResetProfile(t *testing.T) {
	store := openTestStore(t)
	p, _ := store.Profile("ada")
	_ = p.AddCoins(3)
	_, _ = p.SetBestTime(12)
	_ = p.SetMaxLevel(4)
	if _, err := store.SaveRun(Run{Nickname: "ada", Outcome: OutcomeWon, Level: 5}); err != nil {
		t.Fatal(err)
	}

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	stats, _ := p.AllStats()
	if stats.HasBestTime || stats.TotalCoins != 0 || stats.MaxLevel != 1 {
		t.Errorf("stats after reset = %+v", stats)
	}
	if runs, _ := store.RecentRuns("ada", 10); len(runs) != 0 {
		t.Errorf("runs after reset = %d, expected 0", len(runs))
	}
}

func TestPlayersOrdering(t *testing.T) {
	store := openTestStore(t)

	slow, _ := store.Profile("slow")
	_, _ = slow.SetBestTime(90)
	fast, _ := store.Profile("fast")
	_, _ = fast.SetBestTime(60)
	novice, _ := store.Profile("novice")
	_ = novice.SetMaxLevel(3)

	players, err := store.Players()
	if err != nil {
		t.Fatalf("Players() failed: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	order := []string{players[0].Nickname, players[1].Nickname, players[2].Nickname}
	if order[0] != "fast" || order[1] != "slow" || order[2] != "novice" {
		t.Errorf("order = %v, expected [fast slow novice]", order)
	}
}
