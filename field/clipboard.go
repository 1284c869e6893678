package field

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/numfmt"
)

// Clipboard provides field-level clipboard integration.
//
// Read and write failures leave the field unchanged.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// copySelection copies the selected text, or the whole value when nothing is
// selected. Copied text keeps its grouping separators.
func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		s = m.buf.Text()
	}
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

// pasteClipboard inserts trimmed clipboard text as a single edit.
func (m Model) pasteClipboard() (Model, tea.Cmd) {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return m, nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return m, nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return m, nil
	}
	return m.edit(numfmt.KeyOther, func() { m.buf.InsertText(s) })
}
