// Package config provides YAML-based configuration for Lane Dash: the
// canvas, lane and player settings, the object catalog and the level table.
// The level table is the only tuning surface for difficulty.
package config

import (
	"errors"
	"fmt"
)

// GameConfig is the immutable ruleset for a run.
// It is loaded once and passed by value; nothing patches it at runtime.
type GameConfig struct {
	Canvas   CanvasConfig  `yaml:"canvas"`
	Lanes    LanesConfig   `yaml:"lanes"`
	Player   PlayerConfig  `yaml:"player"`
	Objects  ObjectCatalog `yaml:"objects"`
	Levels   []LevelConfig `yaml:"levels"`
	TickRate int           `yaml:"tick_rate"` // Ticks per second the tuning assumes
}

// CanvasConfig defines the canvas geometry before it is fitted to a host.
type CanvasConfig struct {
	BaseWidth   float64 `yaml:"base_width"`
	BaseHeight  float64 `yaml:"base_height"`
	AspectRatio float64 `yaml:"aspect_ratio"` // width / height
}

// LanesConfig defines the lane layout.
type LanesConfig struct {
	Count int `yaml:"count"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Size          float64 `yaml:"size"`
	StartingLives int     `yaml:"starting_lives"`
	BottomOffset  float64 `yaml:"bottom_offset"`
	Sprite        string  `yaml:"sprite"`
}

// ObjectType describes one kind of falling object.
type ObjectType struct {
	Value       int     `yaml:"value"`
	SpawnWeight float64 `yaml:"spawn_weight"` // Default weight, informational
	Size        float64 `yaml:"size"`
	Sprite      string  `yaml:"sprite"`
}

// ObjectCatalog holds the four object types.
type ObjectCatalog struct {
	Coin     ObjectType `yaml:"coin"`
	Gem      ObjectType `yaml:"gem"`
	Heart    ObjectType `yaml:"heart"`
	Obstacle ObjectType `yaml:"obstacle"`
}

// SpawnWeights are cumulative thresholds evaluated coin -> gem -> heart.
// Whatever probability mass remains falls through to an obstacle; the
// weights are never normalized.
type SpawnWeights struct {
	Coin  float64 `yaml:"coin"`
	Gem   float64 `yaml:"gem"`
	Heart float64 `yaml:"heart"`
}

// ObstacleShare returns the implicit obstacle probability.
func (w SpawnWeights) ObstacleShare() float64 {
	rest := 1 - (w.Coin + w.Gem + w.Heart)
	if rest < 0 {
		return 0
	}
	return rest
}

// LevelConfig describes one difficulty tier.
type LevelConfig struct {
	Level        int          `yaml:"level"`
	CoinsToWin   int          `yaml:"coins_to_win"`
	MinSpeed     float64      `yaml:"min_speed"`
	MaxSpeed     float64      `yaml:"max_speed"`
	SpawnChance  float64      `yaml:"spawn_chance"` // Per-tick probability
	SpawnWeights SpawnWeights `yaml:"spawn_weights"`
}

// LevelCount returns the number of configured levels.
func (c GameConfig) LevelCount() int {
	return len(c.Levels)
}

// LevelFor returns the descriptor for a 1-indexed level.
func (c GameConfig) LevelFor(level int) (LevelConfig, error) {
	if level < 1 || level > len(c.Levels) {
		return LevelConfig{}, fmt.Errorf("config: level %d out of range [1, %d]", level, len(c.Levels))
	}
	return c.Levels[level-1], nil
}

// MustLevel returns the descriptor for a 1-indexed level and panics when
// the level is not in the table. Normal progression never asks for one.
func (c GameConfig) MustLevel(level int) LevelConfig {
	lc, err := c.LevelFor(level)
	if err != nil {
		panic(err)
	}
	return lc
}

// Clone returns a deep copy so callers can derive variants safely.
func (c GameConfig) Clone() GameConfig {
	out := c
	out.Levels = make([]LevelConfig, len(c.Levels))
	copy(out.Levels, c.Levels)
	return out
}

// Validate checks the config for values the simulation cannot work with.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Canvas.AspectRatio <= 0 {
		errs = append(errs, errors.New("canvas.aspect_ratio must be positive"))
	}
	if c.Canvas.BaseWidth <= 0 || c.Canvas.BaseHeight <= 0 {
		errs = append(errs, errors.New("canvas base size must be positive"))
	}
	if c.Lanes.Count < 1 {
		errs = append(errs, errors.New("lanes.count must be at least 1"))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, errors.New("player.size must be positive"))
	}
	if c.Player.StartingLives < 1 {
		errs = append(errs, errors.New("player.starting_lives must be at least 1"))
	}
	if c.TickRate < 1 {
		errs = append(errs, errors.New("tick_rate must be at least 1"))
	}

	types := map[string]ObjectType{
		"coin":     c.Objects.Coin,
		"gem":      c.Objects.Gem,
		"heart":    c.Objects.Heart,
		"obstacle": c.Objects.Obstacle,
	}
	for name, t := range types {
		if t.Size <= 0 {
			errs = append(errs, fmt.Errorf("objects.%s.size must be positive", name))
		}
	}
	if c.Objects.Coin.Value < 1 || c.Objects.Gem.Value < 1 {
		errs = append(errs, errors.New("coin and gem values must be at least 1"))
	}

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, lv := range c.Levels {
		if err := lv.validate(i + 1); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid game config: %w", err)
	}
	return nil
}

func (l LevelConfig) validate(want int) error {
	switch {
	case l.Level != want:
		return fmt.Errorf("level %d: declared as level %d", want, l.Level)
	case l.CoinsToWin < 1:
		return fmt.Errorf("level %d: coins_to_win must be at least 1", want)
	case l.MinSpeed <= 0:
		return fmt.Errorf("level %d: min_speed must be positive", want)
	case l.MinSpeed > l.MaxSpeed:
		return fmt.Errorf("level %d: min_speed > max_speed", want)
	case l.SpawnChance < 0 || l.SpawnChance > 1:
		return fmt.Errorf("level %d: spawn_chance must be within [0, 1]", want)
	case l.SpawnWeights.Coin < 0 || l.SpawnWeights.Gem < 0 || l.SpawnWeights.Heart < 0:
		return fmt.Errorf("level %d: spawn weights must not be negative", want)
	}
	return nil
}
