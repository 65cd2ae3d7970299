package core

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as m:ss.cc (minutes, seconds, centiseconds).
// Negative values render as zero.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	centis := int(math.Floor(seconds * 100))
	m := centis / 6000
	s := (centis / 100) % 60
	cs := centis % 100
	return fmt.Sprintf("%d:%02d.%02d", m, s, cs)
}
