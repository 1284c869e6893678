package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numfield/buffer"
	"github.com/iw2rmb/numfield/numfmt"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.ctrl.Settle(msg.ticket)
		m.scale.Settle()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		text := string(msg.Runes)
		return m.edit(numfmt.KeyOther, func() { m.buf.InsertText(text) })
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Dir: buffer.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.buf.Move(buffer.Move{Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.buf.Move(buffer.Move{Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		return m.edit(numfmt.KeyBackspace, m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		return m.edit(numfmt.KeyDelete, m.buf.DeleteForward)
	case key.Matches(msg, km.ToggleSign) && m.togglesSign():
		if m.cfg.ReadOnly {
			return m, nil
		}
		m.ctrl.KeyDown(numfmt.KeyMinus)
		return m, m.settleCmd(m.ctrl.ToggleSign())

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			k := numfmt.KeyOther
			if len(msg.Runes) == 1 {
				k = m.f.KeyFor(msg.Runes[0])
			}
			text := string(msg.Runes)
			return m.edit(k, func() { m.buf.InsertText(text) })
		}
	}

	return m, nil
}

// edit runs phase 1 of an edit: the buffer takes the key's default effect,
// then the controller validates and reformats it. The returned command
// delivers phase 2.
func (m Model) edit(k numfmt.Key, apply func()) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.ctrl.KeyDown(k)
	apply()
	return m, m.settleCmd(m.ctrl.Input())
}

// togglesSign reports whether '-' flips the sign rather than being typed.
func (m Model) togglesSign() bool {
	if !m.f.Config().AllowSign || m.buf.Len() == 0 {
		return false
	}
	if r, ok := m.buf.Selection(); ok && r.Start == 0 && r.End == m.buf.Len() {
		return false
	}
	return true
}
