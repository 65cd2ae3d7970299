// Package assets loads the glyph sprites drawn for the player and the
// falling objects. A missing sprite is never fatal: it is logged and the
// renderer falls back to a primitive shape.
package assets

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/config"
)

//go:embed sprites/*.txt
var embeddedSprites embed.FS

// Sprite keys.
const (
	KeyPlayer   = "player"
	KeyCoin     = "coin"
	KeyGem      = "gem"
	KeyHeart    = "heart"
	KeyObstacle = "obstacle"
)

// Loader resolves sprite paths against an optional directory on disk, then
// against the embedded default set.
type Loader struct {
	dir     string
	logger  *log.Logger
	sprites map[string]*Sprite
}

// NewLoader creates a loader. An empty dir uses only embedded sprites; a
// nil logger discards warnings.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		dir:     dir,
		logger:  logger,
		sprites: make(map[string]*Sprite),
	}
}

// LoadAll loads the player and object sprites named in the config.
// It returns every sprite that loaded; failures are logged and skipped.
func (l *Loader) LoadAll(cfg config.GameConfig) map[string]*Sprite {
	paths := map[string]string{
		KeyPlayer:   cfg.Player.Sprite,
		KeyCoin:     cfg.Objects.Coin.Sprite,
		KeyGem:      cfg.Objects.Gem.Sprite,
		KeyHeart:    cfg.Objects.Heart.Sprite,
		KeyObstacle: cfg.Objects.Obstacle.Sprite,
	}

	for key, path := range paths {
		if path == "" {
			l.logger.Warn("no sprite configured", "key", key)
			continue
		}
		s, err := l.load(key, path)
		if err != nil {
			l.logger.Warn("failed to load sprite, using fallback shape", "key", key, "path", path, "err", err)
			continue
		}
		l.sprites[key] = s
	}

	out := make(map[string]*Sprite, len(l.sprites))
	for k, s := range l.sprites {
		out[k] = s
	}
	return out
}

// Image returns a loaded sprite.
func (l *Loader) Image(key string) (*Sprite, bool) {
	s, ok := l.sprites[key]
	return s, ok
}

func (l *Loader) load(key, path string) (*Sprite, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseSprite(key, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if l.dir != "" {
		if data, err := os.ReadFile(filepath.Join(l.dir, path)); err == nil {
			return data, nil
		}
	}
	data, err := embeddedSprites.ReadFile(filepath.ToSlash(path))
	if err != nil {
		return nil, fmt.Errorf("sprite %s not found on disk or embedded: %w", path, err)
	}
	return data, nil
}
