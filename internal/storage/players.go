package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
)

// ErrEmptyNickname is returned for blank nicknames.
var ErrEmptyNickname = errors.New("storage: nickname must not be empty")

// PlayerStats is the cumulative record of one nickname.
type PlayerStats struct {
	Nickname    string
	BestTime    float64 // Seconds, valid only if HasBestTime
	HasBestTime bool
	TotalGames  int
	TotalCoins  int
	Wins        int
	MaxLevel    int
	UpdatedAt   time.Time
}

// WinRate returns wins as a percentage of games, 0 with no games.
func (p PlayerStats) WinRate() float64 {
	if p.TotalGames == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.TotalGames) * 100
}

// WinRateString formats the win rate with one decimal.
func (p PlayerStats) WinRateString() string {
	return fmt.Sprintf("%.1f%%", p.WinRate())
}

// BestTimeString formats the best time as m:ss.cc, or N/A.
func (p PlayerStats) BestTimeString() string {
	return FormatBestTime(p.BestTime, p.HasBestTime)
}

// FormatBestTime formats an optional time.
func FormatBestTime(seconds float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return core.FormatTime(seconds)
}

// Profile is the per-nickname statistics service. It implements
// game.StatsRecorder.
type Profile struct {
	store    *Store
	nickname string
}

// Ensure Profile implements StatsRecorder
var _ game.StatsRecorder = (*Profile)(nil)

// Profile returns the statistics service for a nickname, creating the
// player row if needed. The nickname is trimmed.
func (s *Store) Profile(nickname string) (*Profile, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO players (nickname) VALUES (?)", nickname); err != nil {
		return nil, fmt.Errorf("storage: cannot create player %q: %w", nickname, err)
	}
	return &Profile{store: s, nickname: nickname}, nil
}

// Nickname returns the profile's nickname.
func (p *Profile) Nickname() string {
	return p.nickname
}

func (p *Profile) bump(column string, delta int) error {
	_, err := p.store.db.Exec(
		"UPDATE players SET "+column+" = "+column+" + ?, updated_at = CURRENT_TIMESTAMP WHERE nickname = ?",
		delta, p.nickname,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update %s: %w", column, err)
	}
	return nil
}

// AddCoins adds to the lifetime coin count.
func (p *Profile) AddCoins(delta int) error {
	return p.bump("total_coins", delta)
}

// IncrementTotalGames counts a finished run.
func (p *Profile) IncrementTotalGames() error {
	return p.bump("total_games", 1)
}

// IncrementWins counts a won run.
func (p *Profile) IncrementWins() error {
	return p.bump("wins", 1)
}

// SetBestTime stores seconds if there is no best time yet or it is faster,
// and reports whether it did. Read and write share one transaction.
func (p *Profile) SetBestTime(seconds float64) (bool, error) {
	tx, err := p.store.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current sql.NullFloat64
	err = tx.QueryRow("SELECT best_time FROM players WHERE nickname = ?", p.nickname).Scan(&current)
	if err != nil {
		return false, fmt.Errorf("storage: cannot read best time: %w", err)
	}

	if current.Valid && seconds >= current.Float64 {
		return false, nil
	}

	_, err = tx.Exec(
		"UPDATE players SET best_time = ?, updated_at = CURRENT_TIMESTAMP WHERE nickname = ?",
		seconds, p.nickname,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot write best time: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit best time: %w", err)
	}
	return true, nil
}

// SetMaxLevel raises the stored max level; lower values are ignored.
func (p *Profile) SetMaxLevel(level int) error {
	_, err := p.store.db.Exec(
		`UPDATE players SET max_level = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE nickname = ? AND max_level < ?`,
		level, p.nickname, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update max level: %w", err)
	}
	return nil
}

// AllStats returns the profile's statistics.
func (p *Profile) AllStats() (PlayerStats, error) {
	return p.store.PlayerStats(p.nickname)
}

// Reset clears the profile's statistics and run history.
func (p *Profile) Reset() error {
	tx, err := p.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`UPDATE players SET best_time = NULL, total_games = 0, total_coins = 0, wins = 0,
		        max_level = 1, updated_at = CURRENT_TIMESTAMP
		 WHERE nickname = ?`, p.nickname); err != nil {
		return fmt.Errorf("storage: cannot reset player: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE nickname = ?", p.nickname); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

// PlayerStats reads one player's statistics. An unknown nickname yields
// the documented defaults: no best time, zero counters, max level 1.
func (s *Store) PlayerStats(nickname string) (PlayerStats, error) {
	stats := PlayerStats{Nickname: nickname, MaxLevel: 1}

	var best sql.NullFloat64
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT best_time, total_games, total_coins, wins, max_level, updated_at
		 FROM players WHERE nickname = ?`,
		nickname,
	).Scan(&best, &stats.TotalGames, &stats.TotalCoins, &stats.Wins, &stats.MaxLevel, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot query player stats: %w", err)
	}

	stats.BestTime, stats.HasBestTime = best.Float64, best.Valid
	stats.UpdatedAt = parseTime(updatedAt)
	return stats, nil
}

// Players returns every player, fastest best time first; players without
// a win follow, ordered by max level and coins.
func (s *Store) Players() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT nickname, best_time, total_games, total_coins, wins, max_level, updated_at
		 FROM players
		 ORDER BY best_time IS NULL, best_time ASC, max_level DESC, total_coins DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerStats
	for rows.Next() {
		var p PlayerStats
		var best sql.NullFloat64
		var updatedAt any
		if err := rows.Scan(&p.Nickname, &best, &p.TotalGames, &p.TotalCoins, &p.Wins, &p.MaxLevel, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.BestTime, p.HasBestTime = best.Float64, best.Valid
		p.UpdatedAt = parseTime(updatedAt)
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}
