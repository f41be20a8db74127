// Package tui implements the interactive calculator: four independent
// panels behind a tab bar, each with its own form, errors and result.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fisicalc/internal/form"
	"github.com/san-kum/fisicalc/internal/panel"
)

// panelForm is the ephemeral state of one calculator panel. Panels never
// share state; switching tabs leaves every other panel untouched.
type panelForm struct {
	panel      *panel.Panel
	inputs     []textinput.Model
	focus      int
	fieldErrs  form.FieldErrors
	computeErr error
	result     *float64
}

// Model is the bubbletea model for the whole calculator.
type Model struct {
	forms  []panelForm
	active int
	width  int
	height int
}

// New builds the calculator model. defaults optionally prefills each
// panel's fields, keyed by panel name then field name.
func New(reg *panel.Registry, defaults map[string]form.Values) Model {
	panels := reg.Panels()
	forms := make([]panelForm, len(panels))

	for i, p := range panels {
		inputs := make([]textinput.Model, len(p.Schema.Fields))
		for j, f := range p.Schema.Fields {
			ti := textinput.New()
			ti.Prompt = ""
			ti.CharLimit = 24
			ti.Width = 12
			ti.Placeholder = form.FormatValue(f.Default)
			if vals, ok := defaults[p.Name]; ok {
				if v, ok := vals[f.Name]; ok {
					ti.SetValue(form.FormatValue(v))
				}
			}
			inputs[j] = ti
		}
		forms[i] = panelForm{panel: p, inputs: inputs}
	}

	m := Model{forms: forms, width: 80, height: 24}
	if len(m.forms) > 0 && len(m.forms[0].inputs) > 0 {
		m.forms[0].inputs[0].Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.switchPanel(1)
			return m, textinput.Blink
		case "shift+tab":
			m.switchPanel(-1)
			return m, textinput.Blink
		case "up":
			m.moveFocus(-1)
			return m, textinput.Blink
		case "down":
			m.moveFocus(1)
			return m, textinput.Blink
		case "enter":
			m.submit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Everything else belongs to the focused input.
	f := &m.forms[m.active]
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m *Model) switchPanel(dir int) {
	f := &m.forms[m.active]
	f.inputs[f.focus].Blur()

	n := len(m.forms)
	m.active = (m.active + dir + n) % n

	f = &m.forms[m.active]
	f.inputs[f.focus].Focus()
}

func (m *Model) moveFocus(dir int) {
	f := &m.forms[m.active]
	next := f.focus + dir
	if next < 0 || next >= len(f.inputs) {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = next
	f.inputs[f.focus].Focus()
}

// submit runs the active panel's validate-then-compute flow. Any previous
// outcome is discarded first, so a failed submission clears a stale result.
func (m *Model) submit() {
	f := &m.forms[m.active]

	raw := make(map[string]string, len(f.inputs))
	for i, field := range f.panel.Schema.Fields {
		raw[field.Name] = f.inputs[i].Value()
	}

	f.fieldErrs = nil
	f.computeErr = nil
	f.result = nil

	res, fieldErrs, err := f.panel.Submit(raw)
	switch {
	case fieldErrs.Any():
		f.fieldErrs = fieldErrs
	case err != nil:
		f.computeErr = err
	default:
		f.result = &res
	}
}

// fieldMessage maps a validation error to the label shown next to a field.
func fieldMessage(err error) string {
	switch {
	case errors.Is(err, form.ErrFieldRequired):
		return "requerido"
	case errors.Is(err, form.ErrNotANumber):
		return "debe ser un número"
	case errors.Is(err, form.ErrNotFinite):
		return "debe ser un número finito"
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + m.viewTabs() + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 56)) + "\n\n")

	f := m.forms[m.active]
	b.WriteString("   " + cyan.Render(f.panel.Title) + "  " + dim.Render(f.panel.Description) + "\n\n")

	labelWidth := 0
	for _, field := range f.panel.Schema.Fields {
		if w := len([]rune(fieldCaption(field))); w > labelWidth {
			labelWidth = w
		}
	}

	for i, field := range f.panel.Schema.Fields {
		caption := fieldCaption(field)
		pad := strings.Repeat(" ", labelWidth-len([]rune(caption)))

		marker := "  "
		label := dim.Render(caption)
		if i == f.focus {
			marker = cyan.Render("▸ ")
			label = white.Render(caption)
		}

		line := "   " + marker + label + pad + "  " + f.inputs[i].View()
		if fe, ok := f.fieldErrs[field.Name]; ok {
			line += "  " + red.Render("✗ "+fieldMessage(fe))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	switch {
	case f.computeErr != nil:
		b.WriteString("   " + red.Render("✗ No se pudo calcular el resultado") + "\n")
	case f.result != nil:
		value := fmt.Sprintf("%.4f", *f.result)
		b.WriteString("   " + green.Render("✓ ") + dim.Render(f.panel.ResultLabel+": ") +
			magenta.Render(value) + " " + dim.Render(f.panel.ResultUnit) + "\n")
	default:
		b.WriteString("   " + dimmer.Render("sin resultado") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   tab panel   ↑↓ campo   enter calcular   esc salir") + "\n")

	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(m.forms))
	for i, f := range m.forms {
		if i == m.active {
			tabs[i] = activeTab.Render("[ " + f.panel.Name + " ]")
		} else {
			tabs[i] = inactiveTab.Render("  " + f.panel.Name + "  ")
		}
	}
	return strings.Join(tabs, " ")
}

func fieldCaption(f form.Field) string {
	if f.Unit == "" {
		return f.Label
	}
	return f.Label + " (" + f.Unit + ")"
}

// Run starts the interactive calculator.
func Run(reg *panel.Registry, defaults map[string]form.Values) error {
	p := tea.NewProgram(New(reg, defaults))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
