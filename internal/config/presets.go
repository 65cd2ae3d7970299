package config

import "fmt"

// DifficultyPreset represents a named difficulty adjustment.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScaling describes how a preset bends the level table.
type presetScaling struct {
	lives       int
	speed       float64
	spawnChance float64
}

func scalingFor(p DifficultyPreset) (presetScaling, bool) {
	switch p {
	case DifficultyEasy:
		return presetScaling{lives: 5, speed: 0.85, spawnChance: 0.9}, true
	case DifficultyHard:
		return presetScaling{lives: 2, speed: 1.2, spawnChance: 1.15}, true
	default:
		return presetScaling{}, false
	}
}

// ApplyPreset returns a copy of cfg adjusted for the preset.
// Normal returns the config unchanged; coin goals and spawn weights are
// never touched.
func ApplyPreset(cfg GameConfig, preset DifficultyPreset) GameConfig {
	out := cfg.Clone()
	sc, ok := scalingFor(preset)
	if !ok {
		return out
	}

	out.Player.StartingLives = sc.lives
	for i := range out.Levels {
		lv := &out.Levels[i]
		lv.MinSpeed *= sc.speed
		lv.MaxSpeed *= sc.speed
		lv.SpawnChance = ClampChance(lv.SpawnChance * sc.spawnChance)
	}
	return out
}

// ClampChance keeps a probability within [0, 1].
func ClampChance(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
