package storage

import "testing"

func TestSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Nickname: "ada", Outcome: OutcomeLost, Level: 2, TotalCoins: 31, Duration: 40.5},
		{Nickname: "grace", Outcome: OutcomeLost, Level: 1, TotalCoins: 3, Duration: 9},
		{Nickname: "ada", Outcome: OutcomeWon, Level: 5, TotalCoins: 300, Duration: 410.25, NewRecord: true},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if len(id) != 36 {
			t.Errorf("run id %q should be a UUID", id)
		}
	}

	ada, err := store.RecentRuns("ada", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(ada) != 2 {
		t.Fatalf("expected 2 runs for ada, got %d", len(ada))
	}
	// Newest first
	if ada[0].Outcome != OutcomeWon || !ada[0].NewRecord || ada[0].Duration != 410.25 {
		t.Errorf("latest run = %+v", ada[0])
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 3 {
		t.Errorf("expected 3 runs overall, got %d", len(all))
	}

	limited, _ := store.RecentRuns("", 1)
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d runs", len(limited))
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Nickname: "ada", Outcome: OutcomeLost, Level: 1})
	if err != nil {
		t.Fatal(err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, expected fixed-id", id)
	}
	if _, err := store.SaveRun(Run{ID: "fixed-id", Nickname: "ada", Outcome: OutcomeLost, Level: 1}); err == nil {
		t.Error("duplicate run id should fail")
	}
}

func TestSummarizeRuns(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.SummarizeRuns("ada")
	if err != nil {
		t.Fatalf("SummarizeRuns() on empty history failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayedAt.IsZero() {
		t.Errorf("empty summary = %+v", empty)
	}

	_, _ = store.SaveRun(Run{Nickname: "ada", Outcome: OutcomeLost, Level: 2, TotalCoins: 30, Duration: 20})
	_, _ = store.SaveRun(Run{Nickname: "ada", Outcome: OutcomeWon, Level: 5, TotalCoins: 310, Duration: 40})

	sum, err := store.SummarizeRuns("ada")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Runs != 2 || sum.Wins != 1 || sum.BestLevel != 5 || sum.MostCoins != 310 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.AvgDuration != 30 {
		t.Errorf("avg duration = %f, expected 30", sum.AvgDuration)
	}
}
