package assets

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/lane-dash/internal/core"
)

// Transparent is the glyph that leaves the cell underneath untouched.
const Transparent = ' '

// Sprite is a small glyph-art image. Rows are padded to the same width.
type Sprite struct {
	Key   string
	Rows  [][]rune
	Color core.Color
}

// Width returns the sprite width in glyphs.
func (s *Sprite) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Height returns the sprite height in glyphs.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// At samples the sprite at fractional coordinates in [0, 1), nearest
// neighbour. Out-of-range samples are transparent.
func (s *Sprite) At(u, v float64) rune {
	w, h := s.Width(), s.Height()
	if w == 0 || u < 0 || v < 0 || u >= 1 || v >= 1 {
		return Transparent
	}
	return s.Rows[int(v*float64(h))][int(u*float64(w))]
}

// colorNames maps the names allowed in a sprite header to palette colors.
var colorNames = map[string]core.Color{
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright_red":    core.ColorBrightRed,
	"bright_yellow": core.ColorBrightYellow,
	"bright_cyan":   core.ColorBrightCyan,
	"pink":          core.ColorPink,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
	"dark_gray":     core.ColorDarkGray,
}

// ParseColor resolves a palette color by name.
func ParseColor(name string) (core.Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// ParseSprite decodes the sprite text format: optional "key: value" header
// lines (only "color" is understood), then the glyph rows. Trailing blank
// rows are dropped; short rows are padded with transparent cells.
func ParseSprite(key string, data []byte) (*Sprite, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("sprite is not valid UTF-8")
	}

	s := &Sprite{Key: key}
	var rows []string
	inHeader := true

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if inHeader {
			if name, value, ok := strings.Cut(line, ":"); ok && isHeaderKey(name) {
				if err := s.applyHeader(name, value); err != nil {
					return nil, err
				}
				continue
			}
			inHeader = false
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sprite: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.New("sprite has no rows")
	}

	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r))
	}
	s.Rows = make([][]rune, len(rows))
	for i, r := range rows {
		row := []rune(r)
		for len(row) < width {
			row = append(row, Transparent)
		}
		s.Rows[i] = row
	}
	return s, nil
}

func isHeaderKey(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}

func (s *Sprite) applyHeader(name, value string) error {
	switch strings.TrimSpace(name) {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		s.Color = c
	}
	return nil
}
