package numfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter normalizes, validates and renders numeric text for one Config.
//
// A Formatter is immutable and may be shared by any number of fields.
type Formatter struct {
	cfg Config
	loc Locale

	grp string
	dec string

	// zeroMarker is what remains of a fixed-fraction value once its only
	// integer digit is deleted, e.g. ".00".
	zeroMarker string
}

type Option func(*Formatter)

// WithLocale overrides the default EnUS locale.
func WithLocale(l Locale) Option {
	return func(f *Formatter) {
		if l != nil {
			f.loc = l
		}
	}
}

// New validates cfg and returns a Formatter for it.
func New(cfg Config, opts ...Option) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	f := &Formatter{
		cfg: cfg,
		loc: EnUS,
		grp: string(cfg.GroupingSeparator),
		dec: string(cfg.DecimalSeparator),
	}
	if cfg.AllowDecimal {
		f.zeroMarker = f.dec + strings.Repeat("0", cfg.FractionDigits)
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.checkLocale(); err != nil {
		return nil, err
	}
	return f, nil
}

// checkLocale makes sure text rendered by the locale normalizes back to the
// same number under the configured separators.
func (f *Formatter) checkLocale() error {
	n := min(f.cfg.fractionDigits(), 1)
	want := decimal.New(12345, -1).Truncate(int32(n))
	out := f.loc.FormatDecimal(want, n, n)
	if d, ok := f.parse(f.strip(out)); !ok || !d.Equal(want) {
		return fmt.Errorf("%w: locale renders %s as %q, which the configured separators do not read back", ErrInvalidConfig, want, out)
	}
	return nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config, opts ...Option) *Formatter {
	f, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Config() Config { return f.cfg }

// Normalize strips grouping separators and truncates the fraction to the
// configured width. ok is false when the result is neither a number nor an
// allowed bare sign.
func (f *Formatter) Normalize(text string) (raw string, ok bool) {
	raw = f.strip(text)
	if !f.IsValid(raw) {
		return "", false
	}
	return raw, true
}

func (f *Formatter) strip(text string) string {
	raw := strings.ReplaceAll(text, f.grp, "")
	if !f.cfg.AllowDecimal {
		return raw
	}
	if i := strings.LastIndex(raw, f.dec); i >= 0 {
		end := i + len(f.dec) + f.cfg.FractionDigits
		if end < len(raw) {
			raw = raw[:end]
		}
	}
	return raw
}

// IsValid reports whether raw is empty, an allowed bare sign, or a plain
// decimal number.
func (f *Formatter) IsValid(raw string) bool {
	switch raw {
	case "":
		return true
	case "-":
		return f.cfg.AllowSign
	}
	_, ok := f.parse(raw)
	return ok
}

// Format renders raw for display. raw must have passed Normalize.
func (f *Formatter) Format(raw string) string {
	if raw == "" || raw == "-" {
		return raw
	}
	if f.zeroMarker != "" && raw == f.zeroMarker {
		return ""
	}

	d, ok := f.parse(raw)
	if !ok {
		return ""
	}
	n := f.cfg.fractionDigits()
	out := f.loc.FormatDecimal(d, n, n)
	if d.IsZero() && strings.HasPrefix(raw, "-") && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

func (f *Formatter) parse(raw string) (decimal.Decimal, bool) {
	s, neg := strings.CutPrefix(raw, "-")
	if neg && !f.cfg.AllowSign {
		return decimal.Decimal{}, false
	}

	intPart, fracPart, hasDec := strings.Cut(s, f.dec)
	if hasDec && !f.cfg.AllowDecimal {
		return decimal.Decimal{}, false
	}
	if intPart == "" && fracPart == "" {
		return decimal.Decimal{}, false
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return decimal.Decimal{}, false
	}

	canonical := intPart
	if canonical == "" {
		canonical = "0"
	}
	if fracPart != "" {
		canonical += "." + fracPart
	}
	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// integerDigits counts the digits before the decimal separator.
func (f *Formatter) integerDigits(raw string) int {
	s := strings.TrimPrefix(raw, "-")
	intPart, _, _ := strings.Cut(s, f.dec)
	return len(intPart)
}

// Dirty reports whether current differs from baseline. Values that both parse
// are compared numerically, so "100" and "100.00" are equal.
func (f *Formatter) Dirty(current, baseline string) bool {
	a, b := f.strip(current), f.strip(baseline)
	da, aok := f.parse(a)
	db, bok := f.parse(b)
	if aok && bok {
		return !da.Equal(db)
	}
	return a != b
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
