// Package hud formats the text shared by the runner games' overlays.
package hud

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Seconds rounds a millisecond countdown to whole seconds, never negative.
func Seconds(ms int) int {
	return max(0, int(float64(ms)/1000+0.5))
}

// BudgetSeconds converts a budget spent at perMs per millisecond into the
// whole seconds it lasts, never negative. A non-positive rate lasts 0.
func BudgetSeconds(budget, perMs float64) int {
	if perMs <= 0 {
		return 0
	}
	return Seconds(int(budget / perMs))
}

// CountdownSeconds is the number shown during a countdown: it drops to 1
// and stays there until the countdown is over.
func CountdownSeconds(ms int) int {
	return max(1, int(math.Ceil(float64(ms)/1000)))
}

// Bar draws a fill gauge of the given width, e.g. [####------].
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Flicker reports whether a blinking sprite is hidden at time t.
func Flicker(active bool, timeMs int64, periodMs int64) bool {
	return active && periodMs > 0 && (timeMs/periodMs)%2 == 0
}
