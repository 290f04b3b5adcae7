package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of text.
//
// Clusters that runewidth reports as zero-width (some emoji sequences) fall
// back to uniseg's estimate so the caret never lands inside a wide glyph.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if cw <= 0 {
			cw = g.Width()
		}
		if cw > 0 {
			w += cw
		}
	}
	return w
}
