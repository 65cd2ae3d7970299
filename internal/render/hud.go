package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
)

func drawHUD(dst *core.Screen, snap game.Snapshot, frame core.Rect) {
	st := snap.State
	y := frame.Y - 1

	level := fmt.Sprintf("Level %d/%d", st.Level, snap.LevelCount)
	dst.DrawText(frame.X, y, level, core.ColorWhite)

	coins := fmt.Sprintf("$ %d/%d", st.Coins, snap.Goal)
	dst.DrawText(frame.X+(frame.W-utf8.RuneCountInString(coins))/2, y, coins, core.ColorBrightYellow)

	lives := Hearts(st.Lives, snap.StartingLives)
	clock := core.FormatTime(st.Elapsed)
	right := frame.Right() - utf8.RuneCountInString(lives) - 1 - utf8.RuneCountInString(clock)
	dst.DrawText(right, y, lives, core.ColorPink)
	dst.DrawText(right+utf8.RuneCountInString(lives)+1, y, clock, core.ColorGray)
}

// Hearts renders lives as filled and empty hearts.
func Hearts(lives, capacity int) string {
	lives = core.Clamp(lives, 0, capacity)
	return strings.Repeat("♥", lives) + strings.Repeat("♡", capacity-lives)
}

type overlayLine struct {
	text  string
	color core.Color
}

// overlayLines returns the message panel for the current phase, or nil.
func overlayLines(snap game.Snapshot) []overlayLine {
	st := snap.State
	switch st.Phase {
	case game.PhaseIdle:
		return []overlayLine{
			{"LANE DASH", core.ColorBrightCyan},
			{"Enter: start", core.ColorGray},
		}
	case game.PhaseLevelTransition:
		return []overlayLine{
			{fmt.Sprintf("Level %d Complete!", st.Level-1), core.ColorGreen},
			{fmt.Sprintf("Next Goal: %d coins", snap.Goal), core.ColorWhite},
			{"Enter: next level", core.ColorGray},
		}
	case game.PhaseWon:
		timeLine := "Time: " + core.FormatTime(st.Elapsed)
		if st.NewRecord {
			timeLine += "  NEW RECORD!"
		}
		return []overlayLine{
			{"Victory! All Levels Completed!", core.ColorBrightYellow},
			{timeLine, core.ColorWhite},
			{fmt.Sprintf("Total Coins: %d", st.TotalCoins), core.ColorWhite},
			{"Enter: play again", core.ColorGray},
		}
	case game.PhaseLost:
		return []overlayLine{
			{"Game Over", core.ColorBrightRed},
			{fmt.Sprintf("Level %d  Total Coins: %d", st.Level, st.TotalCoins), core.ColorWhite},
			{"Enter: try again", core.ColorGray},
		}
	}
	if st.Paused {
		return []overlayLine{
			{"Paused", core.ColorYellow},
			{"P: resume", core.ColorGray},
		}
	}
	return nil
}

func drawOverlay(dst *core.Screen, snap game.Snapshot, frame core.Rect) {
	lines := overlayLines(snap)
	if len(lines) == 0 {
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l.text))
	}
	w = min(w+4, frame.W)
	h := len(lines) + 2
	box := core.NewRect(frame.X+(frame.W-w)/2, frame.Y+(frame.H-h)/2, w, h)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		text := truncate(l.text, box.W-2)
		x := box.X + (box.W-utf8.RuneCountInString(text))/2
		dst.DrawText(max(x, box.X+1), box.Y+1+i, text, l.color)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
