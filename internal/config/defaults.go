package config

import (
	_ "embed"
)

//go:embed defaults/lanedash.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning. It mirrors the embedded
// YAML and is the last fallback when that cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TickRate: 60,
		Canvas: CanvasConfig{
			BaseWidth:   400,
			BaseHeight:  600,
			AspectRatio: 2.0 / 3.0,
		},
		Lanes: LanesConfig{Count: 5},
		Player: PlayerConfig{
			Size:          86,
			StartingLives: 3,
			BottomOffset:  10,
			Sprite:        "sprites/player.txt",
		},
		Objects: ObjectCatalog{
			Coin:     ObjectType{Value: 1, SpawnWeight: 0.40, Size: 42, Sprite: "sprites/coin.txt"},
			Gem:      ObjectType{Value: 10, SpawnWeight: 0.15, Size: 42, Sprite: "sprites/gem.txt"},
			Heart:    ObjectType{Value: 0, SpawnWeight: 0.10, Size: 38, Sprite: "sprites/heart.txt"},
			Obstacle: ObjectType{Value: 0, SpawnWeight: 0.35, Size: 58, Sprite: "sprites/obstacle.txt"},
		},
		Levels: []LevelConfig{
			{Level: 1, CoinsToWin: 20, MinSpeed: 2, MaxSpeed: 3.5, SpawnChance: 0.018,
				SpawnWeights: SpawnWeights{Coin: 0.45, Gem: 0.18, Heart: 0.12}},
			{Level: 2, CoinsToWin: 40, MinSpeed: 2.5, MaxSpeed: 4.2, SpawnChance: 0.020,
				SpawnWeights: SpawnWeights{Coin: 0.42, Gem: 0.16, Heart: 0.10}},
			{Level: 3, CoinsToWin: 60, MinSpeed: 3, MaxSpeed: 5, SpawnChance: 0.022,
				SpawnWeights: SpawnWeights{Coin: 0.38, Gem: 0.15, Heart: 0.09}},
			{Level: 4, CoinsToWin: 80, MinSpeed: 3.5, MaxSpeed: 5.8, SpawnChance: 0.024,
				SpawnWeights: SpawnWeights{Coin: 0.35, Gem: 0.13, Heart: 0.08}},
			{Level: 5, CoinsToWin: 100, MinSpeed: 4, MaxSpeed: 6.5, SpawnChance: 0.026,
				SpawnWeights: SpawnWeights{Coin: 0.32, Gem: 0.12, Heart: 0.06}},
		},
	}
}

// DefaultYAML returns the embedded default config, e.g. for `levels --dump`.
func DefaultYAML() []byte {
	return defaultGameYAML
}
