package game

// StatsRecorder is the persistence collaborator for cumulative player
// statistics. The engine calls it at fixed points: AddCoins on every coin
// or gem pickup, SetMaxLevel on a level-up, and the rest once when a run
// ends. Errors are logged by the engine and never stop the run.
type StatsRecorder interface {
	AddCoins(delta int) error
	IncrementTotalGames() error
	IncrementWins() error
	// SetBestTime stores seconds if it beats the current best and reports
	// whether it did.
	SetBestTime(seconds float64) (bool, error)
	// SetMaxLevel only ever raises the stored level.
	SetMaxLevel(level int) error
}

// NopStats discards everything.
type NopStats struct{}

func (NopStats) AddCoins(int) error { return nil }
func (NopStats) IncrementTotalGames() error { return nil }
func (NopStats) IncrementWins() error { return nil }
func (NopStats) SetBestTime(float64) (bool, error) { return false, nil }
func (NopStats) SetMaxLevel(int) error { return nil }
