package field

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/numfield/autoscale"
	"github.com/iw2rmb/numfield/buffer"
	"github.com/iw2rmb/numfield/numfmt"
	"github.com/iw2rmb/numfield/numinput"
)

var lastID atomic.Int64

// Model is a Bubble Tea component for one numeric field.
//
// Model is a value, but the buffer, controller and watcher behind it are
// shared by its copies. Call Close when the field is unmounted.
type Model struct {
	id  int64
	cfg Config

	f     *numfmt.Formatter
	buf   *buffer.Buffer
	ctrl  *numinput.Controller
	scale *autoscale.Watcher

	unsubscribe []func()

	focused bool
}

// settleMsg runs the deferred half of an edit: caret restore and width
// measurement.
type settleMsg struct {
	id     int64
	ticket numinput.Ticket
}

func New(cfg Config) (Model, error) {
	f, err := numfmt.New(cfg.Format, numfmt.WithLocale(cfg.Locale))
	if err != nil {
		return Model{}, err
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	id := lastID.Add(1)
	log := cfg.Logger
	if log != nil {
		log = log.With(zap.Int64("field", id))
	}

	m := Model{
		id:    id,
		cfg:   cfg,
		f:     f,
		buf:   buffer.New(""),
		scale: autoscale.NewWatcher(autoscale.CellMeasurer, cfg.Padding),
	}

	buf, scale := m.buf, m.scale
	m.ctrl = numinput.New(f, surface{b: buf}, numinput.Options{
		Value:    cfg.Value,
		Baseline: cfg.Baseline,
		Logger:   log,
	})

	m.unsubscribe = append(m.unsubscribe, m.ctrl.Subscribe(func(ev numinput.ChangeEvent) {
		scale.Update(autoscale.SlotValue, ev.Formatted)
	}))
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		m.unsubscribe = append(m.unsubscribe, m.ctrl.Subscribe(func(ev numinput.ChangeEvent) {
			onChange(buildChangeEvent(id, buf, ev))
		}))
	}
	if cfg.OnAutoscale != nil {
		m.unsubscribe = append(m.unsubscribe, scale.Subscribe(cfg.OnAutoscale))
	}

	scale.Update(autoscale.SlotValue, m.ctrl.Formatted())
	scale.Update(autoscale.SlotPlaceholder, cfg.Placeholder)
	return m, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config) Model {
	m, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Model) ID() int64 { return m.id }

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Init schedules the first width measurement.
func (m Model) Init() tea.Cmd { return m.settleCmd(0) }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.ctrl.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.buf.ClearSelection()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Raw is the normalized value, e.g. "-1234.50".
func (m Model) Raw() string { return m.ctrl.Raw() }

// Value is the formatted text on screen, e.g. "-1,234.50".
func (m Model) Value() string { return m.ctrl.Formatted() }

func (m Model) Dirty() bool { return m.ctrl.Dirty() }

// Width is the autoscaled box width in cells.
func (m Model) Width() int { return m.scale.Width() }

// SetPlaceholder replaces the placeholder. Its width is measured on the next
// settle.
func (m Model) SetPlaceholder(s string) (Model, tea.Cmd) {
	m.cfg.Placeholder = s
	m.scale.Update(autoscale.SlotPlaceholder, s)
	return m, m.settleCmd(0)
}

// Close unregisters every callback the field installed.
func (m Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.ctrl.Close()
	m.scale.Close()
}

func (m Model) settleCmd(t numinput.Ticket) tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return settleMsg{id: id, ticket: t}
	}
}

// surface exposes a buffer as the controller's host text field.
type surface struct {
	b *buffer.Buffer
}

func (s surface) Value() string               { return s.b.Text() }
func (s surface) SetValue(v string)           { s.b.SetValue(v) }
func (s surface) Selection() (start, end int) { return s.b.Bounds() }
func (s surface) SetSelection(start, end int) { s.b.SetSelection(start, end) }
