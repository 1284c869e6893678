package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/numfmt"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func TestUpdate_TypingRestoresCaretOnSettle(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency()}).Focus()

	m, cmd := m.Update(runes("5"))
	if got, want := m.Value(), "5.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if got := m.Buffer().Cursor(); got != 4 {
		t.Fatalf("cursor before settle: got %d, want 4", got)
	}

	m = settle(t, m, cmd)
	if got := m.Buffer().Cursor(); got != 1 {
		t.Fatalf("cursor after settle: got %d, want 1", got)
	}

	m = typeText(t, m, "234")
	if got, want := m.Value(), "5,234.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if got := m.Buffer().Cursor(); got != 5 {
		t.Fatalf("cursor: got %d, want 5", got)
	}
}

func TestUpdate_StaleSettleIsIgnored(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency()}).Focus()

	m, first := m.Update(runes("1"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, second := m.Update(runes("2"))

	m, _ = m.Update(first())
	if got := m.Buffer().Cursor(); got != 5 {
		t.Fatalf("cursor after stale settle: got %d, want 5", got)
	}
	m, _ = m.Update(second())
	if got := m.Buffer().Cursor(); got != 2 {
		t.Fatalf("cursor after settle: got %d, want 2", got)
	}
}

func TestUpdate_SettleForOtherFieldIsIgnored(t *testing.T) {
	a := MustNew(Config{Format: numfmt.Currency()}).Focus()
	b := MustNew(Config{Format: numfmt.Currency()}).Focus()

	a, _ = a.Update(runes("3"))
	_, cmd := b.Update(runes("7"))

	a, _ = a.Update(cmd())
	if got := a.Buffer().Cursor(); got != 4 {
		t.Fatalf("cursor: got %d, want 4", got)
	}
}

func TestUpdate_SignThenDigitFromSelectedZero(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency(), Value: "0.00"}).Focus()

	m = typeText(t, m, "-")
	if got := m.Raw(); got != "-" {
		t.Fatalf("raw after '-': got %q, want %q", got, "-")
	}
	if got := m.Value(); got != "-" {
		t.Fatalf("value after '-': got %q, want %q", got, "-")
	}

	m = typeText(t, m, "5")
	if got, want := m.Raw(), "-5"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
	if got, want := m.Value(), "-5.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
}

func TestUpdate_MinusTogglesSign(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency(), Value: "5"}).Focus()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	m = typeText(t, m, "-")
	if got, want := m.Value(), "-5.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if got := m.Buffer().Cursor(); got != 5 {
		t.Fatalf("cursor: got %d, want 5", got)
	}

	m = typeText(t, m, "-")
	if got, want := m.Value(), "5.00"; got != want {
		t.Fatalf("value after second toggle: got %q, want %q", got, want)
	}
}

func TestUpdate_MinusRejectedWithoutSign(t *testing.T) {
	m := MustNew(Config{Format: numfmt.UnsignedCurrency(), Value: "5"}).Focus()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	m = typeText(t, m, "-")
	if got, want := m.Value(), "5.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
}

func TestUpdate_MaxIntegerDigits(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Integer(), Value: "12345678"}).Focus()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	m = typeText(t, m, "9")
	if got, want := m.Value(), "12,345,678"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
}

func TestUpdate_BackspaceSkipsDecimalSeparator(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency(), Value: "1"}).Focus()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Value(), "1.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if got := m.Buffer().Cursor(); got != 1 {
		t.Fatalf("cursor: got %d, want 1", got)
	}

	// Deleting the only integer digit clears the field.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Value(); got != "" {
		t.Fatalf("value: got %q, want empty", got)
	}
}

func TestUpdate_ReadOnlyAndBlurredIgnoreEdits(t *testing.T) {
	ro := MustNew(Config{Format: numfmt.Currency(), Value: "5", ReadOnly: true}).Focus()
	ro, cmd := ro.Update(runes("1"))
	if cmd != nil || ro.Value() != "5.00" {
		t.Fatalf("read-only: got %q cmd=%v", ro.Value(), cmd != nil)
	}

	blurred := MustNew(Config{Format: numfmt.Currency(), Value: "5"})
	blurred, cmd = blurred.Update(runes("1"))
	if cmd != nil || blurred.Value() != "5.00" {
		t.Fatalf("blurred: got %q cmd=%v", blurred.Value(), cmd != nil)
	}
}

func TestUpdate_PasteAndCopy(t *testing.T) {
	cb := &memClipboard{s: " 1,234.5\n"}
	m := MustNew(Config{Format: numfmt.Currency(), Clipboard: cb}).Focus()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Value(), "1,234.50"; got != want {
		t.Fatalf("value after paste: got %q, want %q", got, want)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if got, want := cb.s, "1,234.50"; got != want {
		t.Fatalf("clipboard: got %q, want %q", got, want)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42"), Paste: true})
	if got, want := m.Value(), "42.00"; got != want {
		t.Fatalf("value after bracketed paste: got %q, want %q", got, want)
	}
}

func TestUpdate_DirtyFollowsEdits(t *testing.T) {
	m := MustNew(Config{Format: numfmt.Currency(), Value: "100.00"}).Focus()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m = typeText(t, m, "5")
	if got, want := m.Value(), "100.50"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if !m.Dirty() {
		t.Fatalf("expected dirty")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	m = typeText(t, m, "0")
	if got, want := m.Value(), "100.00"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if m.Dirty() {
		t.Fatalf("expected clean after reverting")
	}
}
