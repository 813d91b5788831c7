package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle in UI coordinates.
type Rect struct {
	X, Y, W, H int
}

// NewRect constructs a Rect from position and dimensions.
func NewRect(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Contains returns whether the given point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt shortens the given string to the given display width,
// indicating truncation with a trailing ellipsis.
func TruncateAt(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// PadCenter pads the given string with spaces on both sides to the given
// display width.
func PadCenter(s string, width int) string {
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}

// PadLeft pads the given string with spaces on the left to the given display
// width (i.e. right-aligns it).
func PadLeft(s string, width int) string {
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(" ", missing) + s
}

// PadRight pads the given string with spaces on the right to the given
// display width.
func PadRight(s string, width int) string {
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}

// Enquote wraps the given string in double quotes.
func Enquote(s string) string { return `"` + s + `"` }
