package bounds

import "github.com/mattn/go-runewidth"

// Font metric approximations. The engine never shapes text; it estimates
// rendered extents from display-cell counts, which is stable across hosts
// and good enough for box sizing.
const (
	glyphWidthRatio = 0.6
	lineHeightRatio = 1.4
)

// TextWidth estimates the rendered width of a single line at the given font
// size. Wide (CJK) runes count double via their display width.
func TextWidth(text string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(text)) * fontSize * glyphWidthRatio
}

// LineHeight returns the vertical space one line of text occupies.
func LineHeight(fontSize float64) float64 {
	return fontSize * lineHeightRatio
}
