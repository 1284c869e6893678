// Package autoscale sizes a text box to fit its value and placeholder.
//
// Widths are measured at the settle point that follows a text change, never
// inside the change itself, and only the latest text of a slot is measured.
package autoscale

import "github.com/iw2rmb/numfield/internal/grapheme"

type Slot string

const (
	// SlotValue drives the box width.
	SlotValue Slot = "value"
	// SlotPlaceholder drives the box minimum width.
	SlotPlaceholder Slot = "placeholder"
)

type Measurer interface {
	Measure(text string) int
}

type MeasureFunc func(text string) int

func (f MeasureFunc) Measure(text string) int { return f(text) }

// CellMeasurer measures terminal cells.
var CellMeasurer Measurer = MeasureFunc(grapheme.Width)

type slotState struct {
	text    string
	width   int
	pending bool
}

type subscriber struct {
	id int
	fn func(Slot, int)
}

// Watcher tracks the text of each slot and reports padded widths.
type Watcher struct {
	measure Measurer
	padding int

	order []Slot
	slots map[Slot]*slotState

	subs   []subscriber
	nextID int
	closed bool
}

func NewWatcher(m Measurer, padding int) *Watcher {
	if m == nil {
		m = CellMeasurer
	}
	return &Watcher{
		measure: m,
		padding: max(padding, 0),
		slots:   make(map[Slot]*slotState),
	}
}

// Update records text for slot. Nothing is measured until Settle.
func (w *Watcher) Update(slot Slot, text string) {
	st, ok := w.slots[slot]
	if !ok {
		st = &slotState{}
		w.slots[slot] = st
		w.order = append(w.order, slot)
		st.text = text
		st.pending = true
		return
	}
	if st.text == text {
		return
	}
	st.text = text
	st.pending = true
}

// Pending reports whether any slot awaits measurement.
func (w *Watcher) Pending() bool {
	for _, st := range w.slots {
		if st.pending {
			return true
		}
	}
	return false
}

// Settle measures every pending slot and notifies subscribers with the padded
// width.
func (w *Watcher) Settle() {
	for _, slot := range w.order {
		st := w.slots[slot]
		if !st.pending {
			continue
		}
		st.pending = false
		st.width = w.measure.Measure(st.text) + w.padding
		for _, s := range append([]subscriber(nil), w.subs...) {
			s.fn(slot, st.width)
		}
	}
}

// SlotWidth returns the last measured padded width of slot.
func (w *Watcher) SlotWidth(slot Slot) int {
	if st, ok := w.slots[slot]; ok {
		return st.width
	}
	return 0
}

// Width is the box width: the value width, never below the placeholder
// width.
func (w *Watcher) Width() int {
	return max(w.SlotWidth(SlotValue), w.SlotWidth(SlotPlaceholder))
}

// Subscribe registers fn and returns its unregister func.
func (w *Watcher) Subscribe(fn func(slot Slot, width int)) (unsubscribe func()) {
	if fn == nil || w.closed {
		return func() {}
	}
	w.nextID++
	id := w.nextID
	w.subs = append(w.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range w.subs {
			if s.id == id {
				w.subs = append(w.subs[:i], w.subs[i+1:]...)
				return
			}
		}
	}
}

// Close unregisters every subscriber.
func (w *Watcher) Close() {
	w.subs = nil
	w.closed = true
}
