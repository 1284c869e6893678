package numfmt

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	ErrInvalidConfig = errors.New("numfmt: invalid config")
	ErrUnknownPreset = errors.New("numfmt: unknown preset")
)

const (
	DefaultMaxIntegerDigits = 8

	maxIntegerDigits  = 15
	maxFractionDigits = 9
)

// Config describes which values a field accepts and how they are rendered.
//
// The zero value of MaxIntegerDigits and of both separators selects the
// defaults (8 digits, ',' and '.').
type Config struct {
	AllowDecimal bool
	AllowSign    bool

	// FractionDigits is the fixed fraction width rendered when AllowDecimal
	// is set. It is ignored otherwise.
	FractionDigits int

	MaxIntegerDigits int

	GroupingSeparator rune
	DecimalSeparator  rune
}

// Currency is a signed amount with two fraction digits.
func Currency() Config {
	return Config{
		AllowDecimal:      true,
		AllowSign:         true,
		FractionDigits:    2,
		MaxIntegerDigits:  DefaultMaxIntegerDigits,
		GroupingSeparator: ',',
		DecimalSeparator:  '.',
	}
}

// UnsignedCurrency is Currency without sign toggling.
func UnsignedCurrency() Config {
	c := Currency()
	c.AllowSign = false
	return c
}

// Integer is a signed whole number.
func Integer() Config {
	return Config{
		AllowSign:         true,
		MaxIntegerDigits:  DefaultMaxIntegerDigits,
		GroupingSeparator: ',',
		DecimalSeparator:  '.',
	}
}

// Preset resolves a config by name: "currency", "unsigned-currency" or
// "integer".
func Preset(name string) (Config, error) {
	switch name {
	case "currency":
		return Currency(), nil
	case "unsigned-currency":
		return UnsignedCurrency(), nil
	case "integer":
		return Integer(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

func (c Config) withDefaults() Config {
	if c.MaxIntegerDigits == 0 {
		c.MaxIntegerDigits = DefaultMaxIntegerDigits
	}
	if c.GroupingSeparator == 0 {
		c.GroupingSeparator = ','
	}
	if c.DecimalSeparator == 0 {
		c.DecimalSeparator = '.'
	}
	return c
}

// Validate reports configuration errors. Defaults are applied first.
func (c Config) Validate() error {
	c = c.withDefaults()

	if c.MaxIntegerDigits < 0 || c.MaxIntegerDigits > maxIntegerDigits {
		return fmt.Errorf("%w: max integer digits %d out of range [1, %d]", ErrInvalidConfig, c.MaxIntegerDigits, maxIntegerDigits)
	}
	if c.FractionDigits < 0 || c.FractionDigits > maxFractionDigits {
		return fmt.Errorf("%w: fraction digits %d out of range [0, %d]", ErrInvalidConfig, c.FractionDigits, maxFractionDigits)
	}
	if c.AllowDecimal && c.FractionDigits == 0 {
		return fmt.Errorf("%w: decimals allowed with zero fraction digits", ErrInvalidConfig)
	}
	if c.GroupingSeparator == c.DecimalSeparator {
		return fmt.Errorf("%w: grouping and decimal separators are both %q", ErrInvalidConfig, c.DecimalSeparator)
	}
	for _, r := range []rune{c.GroupingSeparator, c.DecimalSeparator} {
		if unicode.IsDigit(r) || r == '-' {
			return fmt.Errorf("%w: separator %q clashes with number syntax", ErrInvalidConfig, r)
		}
	}
	return nil
}

// fractionDigits is the rendered fraction width.
func (c Config) fractionDigits() int {
	if !c.AllowDecimal {
		return 0
	}
	return c.FractionDigits
}
