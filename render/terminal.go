// Package render turns solved display grids into coloured terminal text and PNG images.
package render

import (
	"strings"

	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/gookit/color"
)

// PathStyle is the style route glyphs are printed with.
var PathStyle = color.Style{color.FgGreen, color.OpBold}

// Colorize returns g as text with every glyph cell rendered in PathStyle.
// Consecutive glyphs share one escape sequence.
func Colorize(g solver.Grid, glyph rune) string {
	var b strings.Builder
	for row, line := range g {
		if row > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for start < len(line) {
			end := start
			onPath := line[start] == glyph
			for end < len(line) && (line[end] == glyph) == onPath {
				end++
			}
			if onPath {
				b.WriteString(PathStyle.Sprint(string(line[start:end])))
			} else {
				b.WriteString(string(line[start:end]))
			}
			start = end
		}
	}
	return b.String()
}
