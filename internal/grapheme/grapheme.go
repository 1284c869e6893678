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

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := 0
	for _, c := range Split(text) {
		cw := runewidth.StringWidth(c)
		if cw == 0 {
			// runewidth reports 0 for some emoji sequences uniseg sizes.
			cw = uniseg.StringWidth(c)
		}
		w += max(cw, 0)
	}
	return w
}

// PadRight appends spaces until text is width cells wide.
func PadRight(text string, width int) string {
	gap := width - Width(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
