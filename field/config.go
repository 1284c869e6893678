package field

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/numfield/autoscale"
	"github.com/iw2rmb/numfield/numfmt"
)

// Config configures the field Model.
type Config struct {
	Format numfmt.Config
	// Locale defaults to numfmt.EnUS.
	Locale numfmt.Locale

	// Value is the initial text. Baseline is what Dirty compares against;
	// nil means Value.
	Value    string
	Baseline *string

	Placeholder string
	// Prefix is rendered before the value, e.g. "$".
	Prefix string
	// Padding is added to measured widths.
	Padding int

	ReadOnly bool

	KeyMap    KeyMap
	Style     Style
	Clipboard Clipboard
	Logger    *zap.Logger

	OnChange    func(ChangeEvent)
	OnAutoscale func(slot autoscale.Slot, width int)
}
