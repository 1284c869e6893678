package numinput

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/iw2rmb/numfield/numfmt"
)

// Options configures a Controller.
type Options struct {
	// Value is the initial text.
	Value string

	// Baseline is compared against for Dirty. Defaults to Value.
	Baseline *string

	Logger   *zap.Logger
	OnChange func(ChangeEvent)
}

// Controller owns the numfmt.State of one field.
type Controller struct {
	f        *numfmt.Formatter
	surface  Surface
	baseline string
	log      *zap.Logger

	state numfmt.State
	key   numfmt.KeyEvent

	seq     Ticket
	pending Ticket
	caret   int

	subs   []subscriber
	nextID int
	closed bool
}

// New writes the formatted initial value to s and returns its controller.
func New(f *numfmt.Formatter, s Surface, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	baseline := opts.Value
	if opts.Baseline != nil {
		baseline = *opts.Baseline
	}

	c := &Controller{
		f:        f,
		surface:  s,
		baseline: f.Init(baseline).Raw,
		log:      log,
		state:    f.Init(opts.Value),
	}
	if opts.Value != "" && c.state.Formatted == "" {
		log.Debug("initial value rejected", zap.String("value", opts.Value))
	}
	if opts.OnChange != nil {
		c.Subscribe(opts.OnChange)
	}
	s.SetValue(c.state.Formatted)
	return c
}

func (c *Controller) State() numfmt.State { return c.state }
func (c *Controller) Raw() string         { return c.state.Raw }
func (c *Controller) Formatted() string   { return c.state.Formatted }

// Dirty compares the raw value with the normalized baseline.
func (c *Controller) Dirty() bool {
	return c.f.Dirty(c.state.Raw, c.baseline)
}

// KeyDown records the selection before the host applies the key.
func (c *Controller) KeyDown(k numfmt.Key) {
	start, end := c.surface.Selection()
	n := utf8.RuneCountInString(c.surface.Value())
	c.key = numfmt.KeyEvent{
		Key:              k,
		Position:         end,
		SelectionWasFull: n > 0 && start == 0 && end == n,
	}
}

// Input is phase 1 of an edit: the surface already holds the host's edited
// text.
func (c *Controller) Input() Ticket {
	next, outcome := c.f.Apply(c.state, c.surface.Value(), c.key)
	return c.commit(next, outcome)
}

// ToggleSign is phase 1 of a sign flip at the last key-down position.
func (c *Controller) ToggleSign() Ticket {
	st := c.state
	st.Caret = c.key.Position
	st.SelectionWasFull = c.key.SelectionWasFull
	next, outcome := c.f.ToggleSign(st)
	return c.commit(next, outcome)
}

func (c *Controller) commit(next numfmt.State, outcome numfmt.Outcome) Ticket {
	if outcome.Rejected() {
		c.log.Debug("edit rejected",
			zap.Stringer("outcome", outcome),
			zap.Stringer("key", c.key.Key),
			zap.String("text", c.surface.Value()),
		)
	}

	c.state = next
	c.surface.SetValue(next.Formatted)

	c.seq++
	if c.pending != 0 {
		c.log.Debug("caret write superseded", zap.Uint64("ticket", uint64(c.pending)))
	}
	c.pending = c.seq
	c.caret = next.Caret

	c.emit(ChangeEvent{
		Raw:       next.Raw,
		Formatted: next.Formatted,
		Caret:     next.Caret,
		Dirty:     c.Dirty(),
		Outcome:   outcome,
	})
	return c.seq
}

// Settle is phase 2: it writes the caret scheduled by t. Tickets older than
// the last scheduled one are ignored. It reports whether the caret was
// written.
func (c *Controller) Settle(t Ticket) bool {
	if t == 0 || t != c.pending {
		return false
	}
	c.pending = 0

	pos := min(c.caret, utf8.RuneCountInString(c.surface.Value()))
	c.surface.SetSelection(pos, pos)
	return true
}

// Pending reports the ticket awaiting Settle, or 0.
func (c *Controller) Pending() Ticket { return c.pending }

// Focus selects the whole value.
func (c *Controller) Focus() {
	c.surface.SetSelection(0, utf8.RuneCountInString(c.surface.Value()))
}

// Subscribe registers fn for change events and returns its unregister func.
func (c *Controller) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	if fn == nil || c.closed {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Close unregisters every subscriber and drops any pending caret write.
func (c *Controller) Close() {
	c.subs = nil
	c.pending = 0
	c.closed = true
}

func (c *Controller) emit(ev ChangeEvent) {
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(ev)
	}
}
