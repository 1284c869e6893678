package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/numfield/field"
	"github.com/iw2rmb/numfield/internal/grapheme"
)

type form struct {
	specs  []fieldSpec
	fields []field.Model
	focus  int

	submitted bool

	label      lipgloss.Style
	labelFocus lipgloss.Style
	help       lipgloss.Style
}

func newForm(specs []fieldSpec, log *zap.Logger) (form, error) {
	if len(specs) == 0 {
		return form{}, errEmptyForm
	}
	if log == nil {
		log = zap.NewNop()
	}

	f := form{
		specs:      specs,
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		labelFocus: lipgloss.NewStyle().Bold(true),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for _, s := range specs {
		format, err := s.format()
		if err != nil {
			f.close()
			return form{}, err
		}
		m, err := field.New(field.Config{
			Format:      format,
			Value:       s.Value,
			Baseline:    s.Initial,
			Placeholder: s.Placeholder,
			Prefix:      s.Prefix,
			Padding:     1,
			Style:       field.DefaultStyle(),
			Logger:      log.Named(s.Name),
		})
		if err != nil {
			f.close()
			return form{}, err
		}
		f.fields = append(f.fields, m)
	}
	f.fields[0] = f.fields[0].Focus()
	return f, nil
}

func (f form) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.fields))
	for _, m := range f.fields {
		cmds = append(cmds, m.Init())
	}
	return tea.Batch(cmds...)
}

func (f form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q", "esc":
			return f, tea.Quit
		case "tab", "down":
			return f.moveFocus(1), nil
		case "shift+tab", "up":
			return f.moveFocus(-1), nil
		case "enter":
			f.submitted = true
			return f, tea.Quit
		}

		var cmd tea.Cmd
		f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
		return f, cmd
	}

	// Settle messages carry the field id, so broadcasting is safe.
	var cmds []tea.Cmd
	for i := range f.fields {
		var cmd tea.Cmd
		f.fields[i], cmd = f.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return f, tea.Batch(cmds...)
}

func (f form) moveFocus(delta int) form {
	n := len(f.fields)
	f.fields[f.focus] = f.fields[f.focus].Blur()
	f.focus = ((f.focus+delta)%n + n) % n
	f.fields[f.focus] = f.fields[f.focus].Focus()
	return f
}

func (f form) View() string {
	width := 0
	for _, s := range f.specs {
		width = max(width, grapheme.Width(s.label()))
	}

	var sb strings.Builder
	for i, m := range f.fields {
		st := f.label
		if i == f.focus {
			st = f.labelFocus
		}
		sb.WriteString(st.Render(grapheme.PadRight(f.specs[i].label(), width)))
		sb.WriteString(" ")
		sb.WriteString(m.View())
		sb.WriteString("\n")
	}
	sb.WriteString(f.help.Render("tab/shift+tab: move  -: sign  enter: submit  ctrl+q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// payload is printed as JSON on submit.
type payload struct {
	Values map[string]string `json:"values"`
	Dirty  []string          `json:"dirty,omitempty"`
}

func (f form) payload() payload {
	p := payload{Values: make(map[string]string, len(f.fields))}
	for i, m := range f.fields {
		name := f.specs[i].Name
		p.Values[name] = m.Raw()
		if m.Dirty() {
			p.Dirty = append(p.Dirty, name)
		}
	}
	return p
}

func (f form) close() {
	for _, m := range f.fields {
		m.Close()
	}
}
