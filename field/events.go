package field

import (
	"github.com/iw2rmb/numfield/buffer"
	"github.com/iw2rmb/numfield/numfmt"
	"github.com/iw2rmb/numfield/numinput"
)

// ChangeEvent reports the field value after an edit was processed.
type ChangeEvent struct {
	ID      int64
	Version uint64

	Raw       string
	Formatted string
	Dirty     bool

	// Rejected edits still fire: the text on screen was restored.
	Outcome numfmt.Outcome
}

func buildChangeEvent(id int64, b *buffer.Buffer, ev numinput.ChangeEvent) ChangeEvent {
	return ChangeEvent{
		ID:        id,
		Version:   b.Version(),
		Raw:       ev.Raw,
		Formatted: ev.Formatted,
		Dirty:     ev.Dirty,
		Outcome:   ev.Outcome,
	}
}
