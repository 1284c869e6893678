package numfmt

import (
	"strings"
	"unicode/utf8"
)

// Init builds the state for an initial value. Values that do not normalize,
// or that exceed MaxIntegerDigits, produce the empty state.
func (f *Formatter) Init(value string) State {
	raw, ok := f.Normalize(value)
	if !ok || f.integerDigits(raw) > f.cfg.MaxIntegerDigits {
		return State{}
	}
	st := f.settle(raw)
	st.Caret = utf8.RuneCountInString(st.Formatted)
	return st
}

// Apply runs one edit: text is the field content after the host applied the
// key's default effect.
func (f *Formatter) Apply(s State, text string, ev KeyEvent) (State, Outcome) {
	raw, ok := f.Normalize(text)

	outcome := OutcomeAccepted
	switch {
	case !ok:
		outcome = OutcomeInvalid
	case ev.Key == KeyBackspace && runeBefore(s.Formatted, ev.Position) == f.cfg.DecimalSeparator:
		// Dropping the separator would shift the fixed fraction into the
		// integer part ("1.00" -> "100").
		outcome = OutcomeDecimalDelete
	case f.integerDigits(raw) > f.cfg.MaxIntegerDigits:
		outcome = OutcomeTooLong
	}

	var next State
	if outcome == OutcomeAccepted {
		next = f.settle(raw)
	} else {
		next = State{Raw: s.Raw, Formatted: s.Formatted}
	}
	next.LastKey = ev.Key
	next.SelectionWasFull = ev.SelectionWasFull
	next.Caret = f.caret(s.Formatted, next.Formatted, ev)
	return next, outcome
}

// ToggleSign flips the sign of s. The caret policy sees it as a minus key
// pressed at s.Caret.
//
// An empty field stays empty, and a bare sign toggles back to empty.
func (f *Formatter) ToggleSign(s State) (State, Outcome) {
	if !f.cfg.AllowSign || s.Formatted == "" {
		return s, OutcomeAccepted
	}

	abs := strings.TrimPrefix(s.Raw, "-")
	text := abs
	if !strings.HasPrefix(s.Formatted, "-") {
		text = "-" + abs
	}

	return f.Apply(s, text, KeyEvent{
		Key:              KeyMinus,
		Position:         s.Caret,
		SelectionWasFull: s.SelectionWasFull,
	})
}

func (f *Formatter) settle(raw string) State {
	formatted := f.Format(raw)
	if formatted == "" {
		raw = ""
	}
	return State{Raw: raw, Formatted: formatted}
}

func runeBefore(s string, pos int) rune {
	if pos <= 0 {
		return utf8.RuneError
	}
	rs := []rune(s)
	if pos > len(rs) {
		return utf8.RuneError
	}
	return rs[pos-1]
}
