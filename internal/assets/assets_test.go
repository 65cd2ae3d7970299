package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/config"
	"github.com/vovakirdan/lane-dash/internal/core"
)

func TestParseSprite(t *testing.T) {
	s, err := ParseSprite("coin", []byte("color: bright_yellow\n ▄\n███\n\n"))
	if err != nil {
		t.Fatalf("ParseSprite failed: %v", err)
	}
	if s.Color != core.ColorBrightYellow {
		t.Errorf("color = %v, expected bright yellow", s.Color)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	// Short rows are padded with transparent cells
	if s.Rows[0][2] != Transparent {
		t.Errorf("padding = %q, expected transparent", s.Rows[0][2])
	}
}

func TestParseSpriteErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"header only", "color: cyan\n"},
		{"bad color", "color: plaid\n#\n"},
		{"invalid utf8", "\xff\xfe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSprite("x", []byte(tc.data)); err == nil {
				t.Error("ParseSprite should fail")
			}
		})
	}
}

func TestSpriteSampling(t *testing.T) {
	s, err := ParseSprite("x", []byte("ab\ncd\n"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		u, v     float64
		expected rune
	}{
		{0, 0, 'a'},
		{0.6, 0, 'b'},
		{0.1, 0.9, 'c'},
		{0.99, 0.99, 'd'},
		{1, 0, Transparent},
		{-0.1, 0.5, Transparent},
	}
	for _, tc := range tests {
		if got := s.At(tc.u, tc.v); got != tc.expected {
			t.Errorf("At(%v, %v) = %q, expected %q", tc.u, tc.v, got, tc.expected)
		}
	}
}

func TestLoadAllEmbedded(t *testing.T) {
	l := NewLoader("", nil)
	sprites := l.LoadAll(config.DefaultGameConfig())

	for _, key := range []string{KeyPlayer, KeyCoin, KeyGem, KeyHeart, KeyObstacle} {
		if _, ok := sprites[key]; !ok {
			t.Errorf("embedded sprite %q missing", key)
		}
		if _, ok := l.Image(key); !ok {
			t.Errorf("Image(%q) should find the loaded sprite", key)
		}
	}
}

func TestLoadAllPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sprites"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sprites", "coin.txt"), []byte("color: green\nC\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir, nil)
	l.LoadAll(config.DefaultGameConfig())

	coin, ok := l.Image(KeyCoin)
	if !ok || coin.Rows[0][0] != 'C' || coin.Color != core.ColorGreen {
		t.Error("disk sprite should override the embedded one")
	}
	// Files missing on disk fall back to the embedded set
	if _, ok := l.Image(KeyGem); !ok {
		t.Error("gem should come from the embedded set")
	}
}

func TestMissingSpriteIsLoggedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	cfg := config.DefaultGameConfig()
	cfg.Objects.Heart.Sprite = "sprites/nope.txt"

	l := NewLoader("", logger)
	sprites := l.LoadAll(cfg)

	if _, ok := sprites[KeyHeart]; ok {
		t.Error("missing sprite should not be returned")
	}
	if _, ok := sprites[KeyCoin]; !ok {
		t.Error("other sprites should still load")
	}
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("expected a fallback warning, got %q", buf.String())
	}
}
