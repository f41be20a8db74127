package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fisicalc/internal/form"
	"github.com/san-kum/fisicalc/internal/panel"
)

func newTestModel() Model {
	reg := panel.NewRegistry()
	defaults := make(map[string]form.Values)
	for _, p := range reg.Panels() {
		defaults[p.Name] = p.Defaults()
	}
	return New(reg, defaults)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNewPrefillsDefaults(t *testing.T) {
	m := newTestModel()

	f := m.forms[0]
	if f.panel.Name != "planeta" {
		t.Fatalf("expected planeta first, got %s", f.panel.Name)
	}
	if f.inputs[0].Value() == "" {
		t.Error("expected prefilled initial velocity")
	}
}

func TestSubmitComputesResult(t *testing.T) {
	m := newTestModel()
	m.active = 2 // camion
	m.forms[2].inputs[0].SetValue("3000")
	m.forms[2].inputs[1].SetValue("1")

	m.submit()

	f := m.forms[2]
	if f.result == nil {
		t.Fatalf("expected result, field errors %v, compute error %v", f.fieldErrs, f.computeErr)
	}
	if math.Abs(*f.result-45.0) > 1e-9 {
		t.Errorf("expected 45 degrees, got %f", *f.result)
	}
}

func TestSubmitEmptyFieldShowsErrorAndNoResult(t *testing.T) {
	m := newTestModel()
	m.forms[0].inputs[2].SetValue("") // distance

	m.submit()

	f := m.forms[0]
	if f.result != nil {
		t.Error("expected no result with a missing field")
	}
	if !f.fieldErrs.Has("distance") {
		t.Errorf("expected field error for distance, got %v", f.fieldErrs)
	}
}

func TestSubmitFailureClearsPriorResult(t *testing.T) {
	m := newTestModel()

	m.submit()
	if m.forms[0].result == nil {
		t.Fatal("expected result from default inputs")
	}

	m.forms[0].inputs[2].SetValue("0") // distance of zero divides by zero
	m.submit()

	f := m.forms[0]
	if f.result != nil {
		t.Error("expected stale result to be cleared")
	}
	if f.computeErr == nil {
		t.Error("expected a computation error")
	}
}

func TestTabSwitchPreservesPanelState(t *testing.T) {
	m := newTestModel()
	m.forms[0].inputs[0].SetValue("99")
	m.submit()

	next, _ := m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	if m.active != 1 {
		t.Fatalf("expected panel 1 active, got %d", m.active)
	}
	if m.forms[1].result != nil || m.forms[1].fieldErrs.Any() {
		t.Error("switching tabs must not leak state into another panel")
	}

	for i := 0; i < 3; i++ {
		next, _ = m.Update(keyMsg(tea.KeyTab))
		m = next.(Model)
	}
	if m.active != 0 {
		t.Fatalf("expected to cycle back to panel 0, got %d", m.active)
	}
	if m.forms[0].inputs[0].Value() != "99" {
		t.Error("panel fields should survive tab switches")
	}
	if m.forms[0].result == nil {
		t.Error("panel result should survive tab switches")
	}
}

func TestTypingGoesToFocusedInput(t *testing.T) {
	m := newTestModel()
	m.forms[0].inputs[0].SetValue("")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(".")})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	m = next.(Model)

	if got := m.forms[0].inputs[0].Value(); got != "7.5" {
		t.Errorf("expected focused input to read 7.5, got %q", got)
	}
}

func TestMoveFocusStaysInBounds(t *testing.T) {
	m := newTestModel()

	m.moveFocus(-1)
	if m.forms[0].focus != 0 {
		t.Errorf("focus should not move above the first field, got %d", m.forms[0].focus)
	}

	for i := 0; i < 10; i++ {
		m.moveFocus(1)
	}
	last := len(m.forms[0].inputs) - 1
	if m.forms[0].focus != last {
		t.Errorf("focus should stop at the last field %d, got %d", last, m.forms[0].focus)
	}
}
