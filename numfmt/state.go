package numfmt

// Key classifies the key that triggered an edit.
type Key int

const (
	KeyNone Key = iota
	KeyOther
	KeyBackspace
	KeyDelete
	KeyGroupSeparator
	KeyDecimalSeparator
	KeyMinus
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyOther:
		return "other"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyGroupSeparator:
		return "group-separator"
	case KeyDecimalSeparator:
		return "decimal-separator"
	case KeyMinus:
		return "minus"
	default:
		return "unknown"
	}
}

// KeyFor classifies a typed rune.
func (f *Formatter) KeyFor(r rune) Key {
	switch r {
	case f.cfg.GroupingSeparator:
		return KeyGroupSeparator
	case f.cfg.DecimalSeparator:
		return KeyDecimalSeparator
	case '-':
		return KeyMinus
	default:
		return KeyOther
	}
}

// KeyEvent is what the host knew when the key went down, before its default
// edit was applied.
type KeyEvent struct {
	Key Key

	// Position is the selection end at key down.
	Position int

	// SelectionWasFull reports whether the whole text was selected.
	SelectionWasFull bool
}

// State is the text model of one field.
//
// Formatted is always Format(Raw), or empty.
type State struct {
	Raw       string
	Formatted string
	Caret     int

	LastKey          Key
	SelectionWasFull bool
}

// Outcome tells why an edit was kept or dropped. Rejected edits are not
// errors: the previous text simply stays on screen.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeInvalid
	OutcomeDecimalDelete
	OutcomeTooLong
)

func (o Outcome) Rejected() bool { return o != OutcomeAccepted }

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeDecimalDelete:
		return "decimal-delete"
	case OutcomeTooLong:
		return "too-long"
	default:
		return "unknown"
	}
}
