package numfmt

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale renders numbers with grouping and a bounded fraction width.
//
// A Formatter only accepts a Locale whose output its Config can read back,
// see New.
type Locale interface {
	FormatDecimal(d decimal.Decimal, minFrac, maxFrac int) string
}

// EnUS groups with ',' and separates fractions with '.'.
var EnUS Locale = NewLocale(language.AmericanEnglish)

// separatorLocale groups integer digits in threes. Digits always come from
// the exact decimal, never from a float.
type separatorLocale struct {
	grp string
	dec string
}

// NewLocale returns a Locale using the CLDR grouping and decimal symbols of
// tag. Digits are rendered in ASCII.
func NewLocale(tag language.Tag) Locale {
	p := message.NewPrinter(tag)
	sample := p.Sprintf("%v", number.Decimal(1234.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))

	var seps []string
	var run strings.Builder
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			run.WriteRune(r)
			continue
		}
		if run.Len() > 0 {
			seps = append(seps, run.String())
			run.Reset()
		}
	}

	l := separatorLocale{dec: "."}
	switch len(seps) {
	case 1:
		l.dec = seps[0]
	case 2:
		l.grp, l.dec = seps[0], seps[1]
	}
	return l
}

func (l separatorLocale) FormatDecimal(d decimal.Decimal, minFrac, maxFrac int) string {
	d = d.Truncate(int32(maxFrac))
	intPart, frac, _ := strings.Cut(d.Abs().StringFixed(int32(maxFrac)), ".")
	frac = strings.TrimRight(frac, "0")
	if len(frac) < minFrac {
		frac += strings.Repeat("0", minFrac-len(frac))
	}

	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(l.grp)
		}
		sb.WriteRune(c)
	}
	if frac != "" {
		sb.WriteString(l.dec)
		sb.WriteString(frac)
	}
	return sb.String()
}
