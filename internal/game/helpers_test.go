package game

import (
	"testing"

	"github.com/vovakirdan/lane-dash/internal/config"
)

// recordingStats is an in-memory StatsRecorder.
type recordingStats struct {
	coins    int
	games    int
	wins     int
	best     float64
	hasBest  bool
	maxLevel int
}

func (s *recordingStats) AddCoins(delta int) error {
	s.coins += delta
	return nil
}

func (s *recordingStats) IncrementTotalGames() error {
	s.games++
	return nil
}

func (s *recordingStats) IncrementWins() error {
	s.wins++
	return nil
}

func (s *recordingStats) SetBestTime(seconds float64) (bool, error) {
	if s.hasBest && seconds >= s.best {
		return false, nil
	}
	s.best, s.hasBest = seconds, true
	return true, nil
}

func (s *recordingStats) SetMaxLevel(level int) error {
	s.maxLevel = max(s.maxLevel, level)
	return nil
}

// quietConfig returns the default config with spawning disabled, so tests
// place every object themselves.
func quietConfig() config.GameConfig {
	cfg := config.DefaultGameConfig().Clone()
	for i := range cfg.Levels {
		cfg.Levels[i].SpawnChance = 0
	}
	return cfg
}

func newTestEngine(t *testing.T, stats StatsRecorder) *Engine {
	t.Helper()
	cfg := quietConfig()
	e := NewEngine(cfg, BaseViewport(cfg), Options{Stats: stats, TickRate: 60})
	e.Start()
	return e
}

// dropOnPlayer places a motionless object right on the player's center.
func dropOnPlayer(e *Engine, kind ObjectKind) *FallingObject {
	o := NewFallingObject(1000+uint64(len(e.objects)), e.player.Lane, e.catalog.Type(kind), 0) //#nosec G115 -- test ids
	o.Y = e.player.CenterY()
	e.objects = append(e.objects, o)
	return o
}
