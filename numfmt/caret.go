package numfmt

import "unicode/utf8"

// caret places the cursor after prev was reformatted into next.
//
// The result is floored at 0 but may exceed len(next); surfaces clamp it when
// they apply it.
func (f *Formatter) caret(prev, next string, ev KeyEvent) int {
	// Typing into an empty field lands after the first character.
	if prev == "" {
		return 1
	}

	nr := []rune(next)
	if ev.SelectionWasFull {
		if i := indexRune(nr, f.cfg.DecimalSeparator); i >= 0 {
			return i
		}
		return len(nr)
	}

	delta := len(nr) - utf8.RuneCountInString(prev)
	if delta == 0 {
		dec := indexRune(nr, f.cfg.DecimalSeparator)
		switch {
		case ev.Key == KeyBackspace:
			delta = -1
		case ev.Key == KeyGroupSeparator && runeAt(nr, ev.Position) == f.cfg.GroupingSeparator,
			ev.Key == KeyDecimalSeparator && runeAt(nr, ev.Position) == f.cfg.DecimalSeparator:
			// Typed over an existing separator.
			delta = 1
		case dec >= 0 && ev.Position > dec:
			// Fraction digits are overwritten in place.
			delta = 1
		}
	}

	return max(ev.Position+delta, 0)
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

func runeAt(rs []rune, i int) rune {
	if i < 0 || i >= len(rs) {
		return utf8.RuneError
	}
	return rs[i]
}
