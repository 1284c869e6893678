package numfmt

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	f := MustNew(Currency())

	cases := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "", want: "", wantOK: true},
		{text: "-", want: "-", wantOK: true},
		{text: "1,234.50", want: "1234.50", wantOK: true},
		{text: "1,234.567", want: "1234.56", wantOK: true},
		{text: "1.", want: "1.", wantOK: true},
		{text: ".00", want: ".00", wantOK: true},
		{text: "-12", want: "-12", wantOK: true},
		{text: "1a", wantOK: false},
		{text: ".", wantOK: false},
		{text: "1.2.3", wantOK: false},
		{text: "--1", wantOK: false},
		{text: "1-", wantOK: false},
		{text: "1e5", wantOK: false},
		{text: " 1", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := f.Normalize(tc.text)
		if ok != tc.wantOK {
			t.Fatalf("Normalize(%q) ok: got %v, want %v", tc.text, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("Normalize(%q): got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestNormalize_IntegerRejectsDecimals(t *testing.T) {
	f := MustNew(Integer())
	if _, ok := f.Normalize("12.5"); ok {
		t.Fatalf("expected decimal rejected by integer config")
	}
	if got, ok := f.Normalize("12,345"); !ok || got != "12345" {
		t.Fatalf("Normalize: got %q %v, want %q true", got, ok, "12345")
	}
}

func TestIsValid_SignRequiresAllowSign(t *testing.T) {
	f := MustNew(UnsignedCurrency())
	if f.IsValid("-") {
		t.Fatalf("bare sign valid without AllowSign")
	}
	if f.IsValid("-5") {
		t.Fatalf("negative valid without AllowSign")
	}
	if !f.IsValid("5") {
		t.Fatalf("positive rejected")
	}
}

func TestFormat(t *testing.T) {
	currency := MustNew(Currency())
	integer := MustNew(Integer())

	cases := []struct {
		f    *Formatter
		raw  string
		want string
	}{
		{f: currency, raw: "", want: ""},
		{f: currency, raw: "-", want: "-"},
		{f: currency, raw: ".00", want: ""},
		{f: currency, raw: "5", want: "5.00"},
		{f: currency, raw: "1234.5", want: "1,234.50"},
		{f: currency, raw: "12345678.99", want: "12,345,678.99"},
		{f: currency, raw: "-5", want: "-5.00"},
		{f: currency, raw: "-0", want: "-0.00"},
		{f: currency, raw: ".5", want: "0.50"},
		{f: currency, raw: "1.", want: "1.00"},
		{f: integer, raw: "12345678", want: "12,345,678"},
		{f: integer, raw: "-1000", want: "-1,000"},
		{f: integer, raw: "0", want: "0"},
	}

	for _, tc := range cases {
		if got := tc.f.Format(tc.raw); got != tc.want {
			t.Fatalf("Format(%q): got %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormat_RoundTripAndIdempotence(t *testing.T) {
	currency := MustNew(Currency())
	integer := MustNew(Integer())

	cases := []struct {
		f   *Formatter
		raw string
	}{
		{f: currency, raw: "0.00"},
		{f: currency, raw: "5.00"},
		{f: currency, raw: "-5.00"},
		{f: currency, raw: "1234.56"},
		{f: currency, raw: "12345678.90"},
		{f: currency, raw: "-99999999.99"},
		{f: integer, raw: "7"},
		{f: integer, raw: "-1234"},
		{f: integer, raw: "12345678"},
	}

	for _, tc := range cases {
		formatted := tc.f.Format(tc.raw)
		back, ok := tc.f.Normalize(formatted)
		if !ok || back != tc.raw {
			t.Fatalf("round trip %q -> %q -> %q (ok=%v)", tc.raw, formatted, back, ok)
		}
		if again := tc.f.Format(back); again != formatted {
			t.Fatalf("not idempotent: %q then %q", formatted, again)
		}
	}
}

func TestDirty(t *testing.T) {
	f := MustNew(Currency())

	cases := []struct {
		current, baseline string
		want              bool
	}{
		{current: "100.00", baseline: "100.00", want: false},
		{current: "100.50", baseline: "100.00", want: true},
		{current: "100", baseline: "100.00", want: false},
		{current: "1,000.00", baseline: "1000", want: false},
		{current: "", baseline: "", want: false},
		{current: "", baseline: "0.00", want: true},
		{current: "-", baseline: "", want: true},
	}

	for _, tc := range cases {
		if got := f.Dirty(tc.current, tc.baseline); got != tc.want {
			t.Fatalf("Dirty(%q, %q): got %v, want %v", tc.current, tc.baseline, got, tc.want)
		}
	}
}

func TestWithLocale_Overrides(t *testing.T) {
	f := MustNew(Currency(), WithLocale(plainLocale{}))
	if got, want := f.Format("1234"), "1234.00"; got != want {
		t.Fatalf("Format: got %q, want %q", got, want)
	}
}

func TestNew_RejectsMismatchedLocale(t *testing.T) {
	for name, loc := range map[string]Locale{
		"unreadable": stubLocale("X"),
		"german":     NewLocale(language.German),
	} {
		if _, err := New(Currency(), WithLocale(loc)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: got %v, want %v", name, err, ErrInvalidConfig)
		}
	}

	if _, err := New(Integer(), WithLocale(NewLocale(language.German))); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("german integer: got %v, want %v", err, ErrInvalidConfig)
	}
}

func TestFormat_GermanSeparators(t *testing.T) {
	cfg := Currency()
	cfg.GroupingSeparator, cfg.DecimalSeparator = '.', ','
	f := MustNew(cfg, WithLocale(NewLocale(language.German)))

	if got, want := f.Format("-1234,5"), "-1.234,50"; got != want {
		t.Fatalf("Format: got %q, want %q", got, want)
	}
}

func TestFormat_ExactAtDigitLimit(t *testing.T) {
	cases := []struct {
		cfg  Config
		raw  string
		want string
	}{
		{
			cfg:  Config{AllowSign: true, MaxIntegerDigits: 15},
			raw:  "123456789012345",
			want: "123,456,789,012,345",
		},
		{
			cfg:  Config{AllowDecimal: true, AllowSign: true, FractionDigits: 9, MaxIntegerDigits: 15},
			raw:  "-999999999999999.987654321",
			want: "-999,999,999,999,999.987654321",
		},
	}

	for _, tc := range cases {
		f := MustNew(tc.cfg)
		got := f.Format(tc.raw)
		if got != tc.want {
			t.Fatalf("Format(%q): got %q, want %q", tc.raw, got, tc.want)
		}
		if raw, ok := f.Normalize(got); !ok || raw != tc.raw {
			t.Fatalf("Normalize(%q): got %q ok=%v, want %q", got, raw, ok, tc.raw)
		}
	}
}
