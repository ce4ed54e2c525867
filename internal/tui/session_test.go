package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkozlova/carewatch/internal/model"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Journal.Dir = filepath.Join(t.TempDir(), "journal")
	return NewModel(cfg)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TabSwitching(t *testing.T) {
	m := testModel(t)

	if m.tab != tabCheck {
		t.Errorf("Expected session to start on Quick Check, got %d", m.tab)
	}

	next, _ := m.Update(keyMsg("ctrl+t"))
	m = next.(Model)
	if m.tab != tabLog {
		t.Errorf("Expected Care Log tab, got %d", m.tab)
	}

	next, _ = m.Update(keyMsg("ctrl+t"))
	next, _ = next.(Model).Update(keyMsg("ctrl+t"))
	m = next.(Model)
	if m.tab != tabCheck {
		t.Errorf("Expected wrap-around to Quick Check, got %d", m.tab)
	}
}

func TestModel_EmptyCheckShowsValidation(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(keyMsg("ctrl+r"))
	m = next.(Model)

	if m.checkErr != "Please type something first." {
		t.Errorf("Expected validation message, got %q", m.checkErr)
	}
	if m.report != nil {
		t.Error("Expected no report for empty input")
	}
}

func TestModel_RunCheck(t *testing.T) {
	m := testModel(t)
	m.observation.SetValue("sudden chest pain and trouble breathing")

	next, _ := m.Update(keyMsg("ctrl+r"))
	m = next.(Model)

	if m.report == nil {
		t.Fatal("Expected a report")
	}
	if !m.report.Urgent {
		t.Error("Expected urgent report")
	}
	if len(m.report.RedFlags) != 2 {
		t.Errorf("Expected 2 red flags, got %v", m.report.RedFlags)
	}
}

func TestModel_SeverityStaysInBounds(t *testing.T) {
	m := testModel(t)
	m.tab = tabLog
	m.focus = fieldSeverity

	for i := 0; i < 15; i++ {
		next, _ := m.Update(keyMsg("right"))
		m = next.(Model)
	}
	if m.severity != 10 {
		t.Errorf("Expected severity capped at 10, got %d", m.severity)
	}

	for i := 0; i < 25; i++ {
		next, _ := m.Update(keyMsg("left"))
		m = next.(Model)
	}
	if m.severity != 0 {
		t.Errorf("Expected severity floored at 0, got %d", m.severity)
	}
}

func TestModel_GenerateNoteFlagsObservation(t *testing.T) {
	m := testModel(t)
	m.tab = tabLog
	m.observed.SetValue("fell and hit her head")

	next, _ := m.Update(keyMsg("ctrl+g"))
	m = next.(Model)

	if m.note == "" {
		t.Fatal("Expected a generated note")
	}
	if !strings.Contains(m.note, "## Care Log Entry") {
		t.Errorf("Expected formatted note, got:\n%s", m.note)
	}
	if len(m.noteFlags) == 0 {
		t.Error("Expected red-flag warning for the observation")
	}
}

func TestModel_FieldCycling(t *testing.T) {
	m := testModel(t)
	m.tab = tabLog

	if m.focus != fieldName {
		t.Errorf("Expected focus on name first, got %d", m.focus)
	}

	for i := 0; i < fieldCount; i++ {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}
	if m.focus != fieldName {
		t.Errorf("Expected focus to wrap back to name, got %d", m.focus)
	}
}

func TestSeverityBar(t *testing.T) {
	if got := severityBar(0); got != "[----------]" {
		t.Errorf("Expected empty bar, got %q", got)
	}
	if got := severityBar(10); got != "[##########]" {
		t.Errorf("Expected full bar, got %q", got)
	}
	if got := severityBar(3); got != "[###-------]" {
		t.Errorf("Expected partial bar, got %q", got)
	}
}

func TestModel_QuitClearsView(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(Model)

	if !m.quitting {
		t.Error("Expected quitting state")
	}
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if m.View() != "" {
		t.Error("Expected empty view while quitting")
	}
}
