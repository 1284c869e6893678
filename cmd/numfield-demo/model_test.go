package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func send(t *testing.T, f form, msg tea.Msg) form {
	t.Helper()
	next, cmd := f.Update(msg)
	f = next.(form)
	if cmd == nil {
		return f
	}
	// Deliver the settle message the field scheduled.
	if out := cmd(); out != nil {
		if _, quit := out.(tea.QuitMsg); !quit {
			next, _ = f.Update(out)
			f = next.(form)
		}
	}
	return f
}

func testForm(t *testing.T) form {
	t.Helper()
	f, err := newForm([]fieldSpec{
		{Name: "balance", Preset: "currency", Value: "10"},
		{Name: "qty", Preset: "integer"},
	}, nil)
	if err != nil {
		t.Fatalf("newForm: %v", err)
	}
	t.Cleanup(f.close)
	return f
}

func TestForm_TabCyclesFocus(t *testing.T) {
	f := testForm(t)
	if !f.fields[0].Focused() || f.fields[1].Focused() {
		t.Fatalf("first field should start focused")
	}

	f = send(t, f, tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != 1 || f.fields[0].Focused() || !f.fields[1].Focused() {
		t.Fatalf("focus after tab: got %d", f.focus)
	}

	f = send(t, f, tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != 0 {
		t.Fatalf("focus after wrap: got %d, want 0", f.focus)
	}

	f = send(t, f, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != 1 {
		t.Fatalf("focus after shift+tab: got %d, want 1", f.focus)
	}
}

func TestForm_SubmitPayload(t *testing.T) {
	f := testForm(t)

	f = send(t, f, tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "1234" {
		f = send(t, f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got, want := f.fields[1].Value(), "1,234"; got != want {
		t.Fatalf("qty: got %q, want %q", got, want)
	}

	next, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f = next.(form)
	if !f.submitted || cmd == nil {
		t.Fatalf("enter should submit and quit")
	}

	want := payload{
		Values: map[string]string{"balance": "10", "qty": "1234"},
		Dirty:  []string{"qty"},
	}
	if diff := cmp.Diff(want, f.payload()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_ViewListsLabels(t *testing.T) {
	f, err := newForm(defaultForm(), nil)
	if err != nil {
		t.Fatalf("newForm: %v", err)
	}
	defer f.close()

	view := f.View()
	for _, label := range []string{"Balance", "Fee", "Quantity", "enter: submit"} {
		if !strings.Contains(view, label) {
			t.Fatalf("view missing %q:\n%s", label, view)
		}
	}
}
