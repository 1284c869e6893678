package numinput

import "github.com/iw2rmb/numfield/numfmt"

// ChangeEvent is emitted after each edit that was processed.
type ChangeEvent struct {
	Raw       string
	Formatted string
	Caret     int
	Dirty     bool

	// Outcome is OutcomeAccepted or the reason the edit was dropped.
	Outcome numfmt.Outcome
}

// Ticket identifies a scheduled caret write.
type Ticket uint64

type subscriber struct {
	id int
	fn func(ChangeEvent)
}
