package render

import (
	"strings"

	"github.com/tdewolff/canvas"
)

// Line is one wrapped line of text with its measured width.
type Line struct {
	Text  string
	Width float64
}

// Wrap splits content into drawable lines. Explicit line breaks delimit
// paragraphs; within a paragraph, words are packed greedily so that each
// line's measured width (using the given face) stays within limit. A line
// always keeps at least one word, even when that word alone overflows the
// limit. An empty paragraph produces an empty line so blank lines keep their
// vertical space.
func Wrap(content string, limit float64, face *canvas.FontFace) []Line {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var lines []Line
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, Line{})
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if face.TextWidth(candidate) > limit {
				lines = append(lines, Line{Text: current, Width: face.TextWidth(current)})
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, Line{Text: current, Width: face.TextWidth(current)})
	}
	return lines
}
