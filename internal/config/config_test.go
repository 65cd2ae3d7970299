package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	def := DefaultGameConfig()
	if cfg.LevelCount() != def.LevelCount() {
		t.Fatalf("level count = %d, expected %d", cfg.LevelCount(), def.LevelCount())
	}
	for i := range def.Levels {
		if cfg.Levels[i] != def.Levels[i] {
			t.Errorf("level %d = %+v, expected %+v", i+1, cfg.Levels[i], def.Levels[i])
		}
	}
	if cfg.Objects != def.Objects {
		t.Errorf("object catalog differs: %+v vs %+v", cfg.Objects, def.Objects)
	}
	if cfg.Player != def.Player || cfg.Lanes != def.Lanes {
		t.Error("player or lane settings differ from defaults")
	}
}

func TestLevelFor(t *testing.T) {
	cfg := DefaultGameConfig()

	lv, err := cfg.LevelFor(1)
	if err != nil {
		t.Fatalf("LevelFor(1) failed: %v", err)
	}
	if lv.CoinsToWin != 20 {
		t.Errorf("level 1 coins_to_win = %d, expected 20", lv.CoinsToWin)
	}

	for _, bad := range []int{0, -1, cfg.LevelCount() + 1} {
		if _, err := cfg.LevelFor(bad); err == nil {
			t.Errorf("LevelFor(%d) should fail", bad)
		}
	}
}

func TestMustLevelPanicsOutOfRange(t *testing.T) {
	cfg := DefaultGameConfig()

	defer func() {
		if recover() == nil {
			t.Error("MustLevel should panic for a level beyond the table")
		}
	}()
	cfg.MustLevel(cfg.LevelCount() + 1)
}

func TestValidateRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		want   string
	}{
		{"no levels", func(c *GameConfig) { c.Levels = nil }, "at least one level"},
		{"speed range inverted", func(c *GameConfig) { c.Levels[0].MinSpeed = 9 }, "min_speed > max_speed"},
		{"chance above one", func(c *GameConfig) { c.Levels[1].SpawnChance = 1.5 }, "spawn_chance"},
		{"level numbering gap", func(c *GameConfig) { c.Levels[2].Level = 7 }, "declared as level 7"},
		{"zero lanes", func(c *GameConfig) { c.Lanes.Count = 0 }, "lanes.count"},
		{"no lives", func(c *GameConfig) { c.Player.StartingLives = 0 }, "starting_lives"},
		{"zero object size", func(c *GameConfig) { c.Objects.Gem.Size = 0 }, "objects.gem.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig().Clone()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestObstacleShareIsRemainder(t *testing.T) {
	w := SpawnWeights{Coin: 0.45, Gem: 0.18, Heart: 0.12}
	got := w.ObstacleShare()
	if got < 0.2499 || got > 0.2501 {
		t.Errorf("ObstacleShare() = %f, expected 0.25", got)
	}

	over := SpawnWeights{Coin: 0.8, Gem: 0.3}
	if over.ObstacleShare() != 0 {
		t.Error("oversubscribed weights leave no obstacle share")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := `
lanes:
  count: 3
levels:
  - level: 1
    coins_to_win: 5
    min_speed: 1
    max_speed: 2
    spawn_chance: 0.5
    spawn_weights: { coin: 1.0, gem: 0, heart: 0 }
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Lanes.Count != 3 {
		t.Errorf("lanes = %d, expected 3", cfg.Lanes.Count)
	}
	if cfg.LevelCount() != 1 || cfg.Levels[0].CoinsToWin != 5 {
		t.Errorf("levels not replaced: %+v", cfg.Levels)
	}
	// Unspecified sections keep defaults
	if cfg.Player.Size != 86 {
		t.Errorf("player size = %f, expected default 86", cfg.Player.Size)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: [{level: 2, coins_to_win: 1, min_speed: 1, max_speed: 1}]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an invalid level table")
	}
}

func TestMarshalRoundTripKeepsLevels(t *testing.T) {
	data, err := Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.LevelCount() != DefaultGameConfig().LevelCount() {
		t.Error("marshalled config lost levels")
	}
}
