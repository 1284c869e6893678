package field

import (
	"strings"

	graphemeutil "github.com/iw2rmb/numfield/internal/grapheme"
)

const dirtyMarker = "!"

func (m Model) View() string {
	var sb strings.Builder

	if m.ctrl.Dirty() {
		sb.WriteString(m.cfg.Style.Dirty.Render(dirtyMarker))
	} else {
		sb.WriteString(strings.Repeat(" ", graphemeutil.Width(dirtyMarker)))
	}
	if m.cfg.Prefix != "" {
		sb.WriteString(m.cfg.Style.Prefix.Render(m.cfg.Prefix))
		sb.WriteByte(' ')
	}
	sb.WriteString(m.renderContent())
	return sb.String()
}

// renderContent draws the value (or placeholder) padded to the autoscaled
// width.
func (m Model) renderContent() string {
	st := m.cfg.Style
	text := m.buf.Text()
	cells := 0

	var sb strings.Builder
	if text == "" {
		ph := graphemeutil.Split(m.cfg.Placeholder)
		if m.focused {
			first := " "
			if len(ph) > 0 {
				first, ph = ph[0], ph[1:]
			}
			sb.WriteString(st.Cursor.Render(first))
			cells += graphemeutil.Width(first)
		}
		rest := strings.Join(ph, "")
		if rest != "" {
			sb.WriteString(st.Placeholder.Render(rest))
			cells += graphemeutil.Width(rest)
		}
	} else {
		sel, hasSel := m.buf.Selection()
		cursor := m.buf.Cursor()
		for i, r := range []rune(text) {
			s := string(r)
			switch {
			case m.focused && hasSel && i >= sel.Start && i < sel.End:
				sb.WriteString(st.Selection.Render(s))
			case m.focused && !hasSel && i == cursor:
				sb.WriteString(st.Cursor.Render(s))
			default:
				sb.WriteString(st.Text.Render(s))
			}
		}
		cells = graphemeutil.Width(text)
		if m.focused && !hasSel && cursor >= m.buf.Len() {
			sb.WriteString(st.Cursor.Render(" "))
			cells++
		}
	}

	if gap := m.scale.Width() - cells; gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	}
	return sb.String()
}
