package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Run is one finished run.
type Run struct {
	ID         string
	Nickname   string
	Outcome    string
	Level      int
	TotalCoins int
	Duration   float64 // Seconds
	NewRecord  bool
	CreatedAt  time.Time
}

// SaveRun records a finished run and returns its ID. An empty ID gets a
// fresh UUID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, nickname, outcome, level, total_coins, duration_secs, new_record)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Nickname, r.Outcome, r.Level, r.TotalCoins, r.Duration, r.NewRecord,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs, newest first. An empty nickname
// returns runs of every player.
func (s *Store) RecentRuns(nickname string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, nickname, outcome, level, total_coins, duration_secs, new_record, created_at
		 FROM runs
		 WHERE ? = '' OR nickname = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		nickname, nickname, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Nickname,
			&r.Outcome,
			&r.Level,
			&r.TotalCoins,
			&r.Duration,
			&r.NewRecord,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunSummary contains aggregated statistics over a player's runs.
type RunSummary struct {
	Runs         int
	Wins         int
	BestLevel    int
	MostCoins    int
	AvgDuration  float64
	LastPlayedAt time.Time
}

// SummarizeRuns aggregates the run history of one nickname.
func (s *Store) SummarizeRuns(nickname string) (RunSummary, error) {
	var sum RunSummary
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(MAX(total_coins), 0),
		        COALESCE(AVG(duration_secs), 0),
		        MAX(created_at)
		 FROM runs WHERE nickname = ?`,
		nickname,
	).Scan(&sum.Runs, &sum.Wins, &sum.BestLevel, &sum.MostCoins, &sum.AvgDuration, &last)
	if err != nil {
		return RunSummary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	sum.LastPlayedAt = parseTime(last)
	return sum, nil
}
