// Package tui implements the interactive carewatch session: a tabbed
// terminal UI mirroring the quick check, care log, and plan views.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/mkozlova/carewatch/internal/checkup"
	"github.com/mkozlova/carewatch/internal/journal"
	"github.com/mkozlova/carewatch/internal/model"
	"github.com/mkozlova/carewatch/internal/notes"
	"github.com/mkozlova/carewatch/internal/triage"
)

type tab int

const (
	tabCheck tab = iota
	tabLog
	tabPlan
)

var tabNames = []string{"Quick Check", "Care Log", "Plan & Resources"}

// Care log field indices, cycled with tab/shift+tab
const (
	fieldName = iota
	fieldRelationship
	fieldSeverity
	fieldObserved
	fieldNotes
	fieldCount
)

type sessionKeyMap struct {
	nextTab   key.Binding
	runCheck  key.Binding
	nextField key.Binding
	prevField key.Binding
	generate  key.Binding
	save      key.Binding
	quit      key.Binding
}

func newSessionKeyMap() sessionKeyMap {
	return sessionKeyMap{
		nextTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "next tab"),
		),
		runCheck: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "run check"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate note"),
		),
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save to journal"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Model is the bubbletea model for the whole session
type Model struct {
	cfg      *model.Config
	pipeline *checkup.Pipeline
	store    *journal.Store
	keys     sessionKeyMap
	tab      tab

	// Quick Check tab
	observation textarea.Model
	report      *model.CheckReport
	checkErr    string
	preview     []string
	limiter     *rate.Limiter

	// Care Log tab
	focus        int
	name         textinput.Model
	relationship textinput.Model
	severity     int
	observed     textarea.Model
	extraNotes   textarea.Model
	note         string
	noteFlags    []string
	savedID      string
	saveErr      string

	width    int
	quitting bool
}

// NewModel creates the session model
func NewModel(cfg *model.Config) Model {
	observation := textarea.New()
	observation.Placeholder = "Example: sudden chest pain, trouble breathing, fell and hit head, very confused..."
	observation.SetHeight(6)
	observation.Focus()

	name := textinput.New()
	name.Placeholder = "Person's name (optional)"

	relationship := textinput.New()
	relationship.Placeholder = "Your relationship, e.g. daughter, spouse, aide (optional)"

	observed := textarea.New()
	observed.Placeholder = "What you observed (copy/paste here)"
	observed.SetHeight(5)

	extraNotes := textarea.New()
	extraNotes.Placeholder = "Triggers, what helped, what changed today..."
	extraNotes.SetHeight(3)

	hz := cfg.Session.PreviewRateHz
	if hz <= 0 {
		hz = 4
	}

	return Model{
		cfg:          cfg,
		pipeline:     checkup.NewPipeline(cfg),
		store:        journal.NewStore(cfg.Journal.Dir),
		keys:         newSessionKeyMap(),
		observation:  observation,
		limiter:      rate.NewLimiter(rate.Limit(hz), 1),
		name:         name,
		relationship: relationship,
		severity:     5,
		observed:     observed,
		extraNotes:   extraNotes,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.nextTab):
			m.tab = (m.tab + 1) % 3
			return m.syncFocus(), nil
		}

		switch m.tab {
		case tabCheck:
			return m.updateCheck(msg)
		case tabLog:
			return m.updateLog(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.observation.SetWidth(msg.Width - 6)
		m.observed.SetWidth(msg.Width - 6)
		m.extraNotes.SetWidth(msg.Width - 6)
		return m, nil
	}

	var cmd tea.Cmd
	m.observation, cmd = m.observation.Update(msg)
	return m, cmd
}

func (m Model) updateCheck(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.runCheck) {
		text := strings.TrimSpace(m.observation.Value())
		if text == "" {
			m.checkErr = "Please type something first."
			m.report = nil
			return m, nil
		}
		m.checkErr = ""
		m.report = m.pipeline.Run(text)
		return m, nil
	}

	var cmd tea.Cmd
	m.observation, cmd = m.observation.Update(msg)

	// Live preview of red-flag matches, throttled so every keystroke
	// does not rescan the rule table
	if m.limiter.Allow() {
		m.preview = triage.FindRedFlags(m.observation.Value())
	}

	return m, cmd
}

func (m Model) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextField):
		m.focus = (m.focus + 1) % fieldCount
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.prevField):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.generate):
		entry := m.currentEntry()
		m.note = entry.Format()
		m.noteFlags = triage.FindRedFlags(m.observed.Value())
		m.savedID = ""
		m.saveErr = ""
		return m, nil

	case key.Matches(msg, m.keys.save):
		entry := m.currentEntry()
		m.note = entry.Format()
		m.noteFlags = triage.FindRedFlags(m.observed.Value())
		id, err := m.store.Append(entry)
		if err != nil {
			m.saveErr = err.Error()
		} else {
			m.savedID = id
			m.saveErr = ""
		}
		return m, nil
	}

	// The severity field is a bounded selector, not a text input;
	// this is where the 0-10 clamp lives
	if m.focus == fieldSeverity {
		switch msg.String() {
		case "left", "down", "-":
			if m.severity > 0 {
				m.severity--
			}
		case "right", "up", "+":
			if m.severity < 10 {
				m.severity++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldRelationship:
		m.relationship, cmd = m.relationship.Update(msg)
	case fieldObserved:
		m.observed, cmd = m.observed.Update(msg)
	case fieldNotes:
		m.extraNotes, cmd = m.extraNotes.Update(msg)
	}
	return m, cmd
}

func (m Model) currentEntry() notes.Entry {
	return notes.NewEntry(
		m.name.Value(),
		m.relationship.Value(),
		m.observed.Value(),
		m.severity,
		m.extraNotes.Value(),
	)
}

// syncFocus gives keyboard focus to exactly one control
func (m Model) syncFocus() Model {
	m.observation.Blur()
	m.name.Blur()
	m.relationship.Blur()
	m.observed.Blur()
	m.extraNotes.Blur()

	switch m.tab {
	case tabCheck:
		m.observation.Focus()
	case tabLog:
		switch m.focus {
		case fieldName:
			m.name.Focus()
		case fieldRelationship:
			m.relationship.Focus()
		case fieldObserved:
			m.observed.Focus()
		case fieldNotes:
			m.extraNotes.Focus()
		}
	}
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Caregiver Support (demo-only, rule-based)"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case tabCheck:
		b.WriteString(m.viewCheck())
	case tabLog:
		b.WriteString(m.viewLog())
	case tabPlan:
		b.WriteString(model.CarePlan)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\n[ctrl+t] switch tab • [esc] quit"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(model.Disclaimer))

	return b.String()
}

func (m Model) tabBar() string {
	var parts []string
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return strings.Join(parts, "|")
}

func (m Model) viewCheck() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("What's happening right now?"))
	b.WriteString("\n")
	b.WriteString(m.observation.View())
	b.WriteString("\n")

	if len(m.preview) > 0 {
		b.WriteString(urgentStyle.Render("Possible red flags: " + strings.Join(m.preview, ", ")))
		b.WriteString("\n")
	}

	if m.checkErr != "" {
		b.WriteString(urgentStyle.Render(m.checkErr))
		b.WriteString("\n")
	}

	if m.report != nil {
		b.WriteString("\n")
		if m.report.Urgent {
			b.WriteString(urgentStyle.Render("Possible emergency (\"red flag\") detected"))
			b.WriteString("\n")
			b.WriteString("Red-flag matches: " + strings.Join(m.report.RedFlags, ", "))
		} else {
			b.WriteString(okStyle.Render("No emergency keywords detected (based on simple rules)"))
		}
		b.WriteString("\n\nSupportive suggestions (general, non-medical):\n")
		for _, s := range m.report.Suggestions {
			b.WriteString("  - " + s + "\n")
		}
	}

	b.WriteString(helpStyle.Render("\n[ctrl+r] run quick check"))
	return b.String()
}

func (m Model) viewLog() string {
	var b strings.Builder

	focusMark := func(field int, label string) string {
		if m.focus == field {
			return activeTabStyle.Render("> " + label)
		}
		return labelStyle.Render("  " + label)
	}

	b.WriteString(focusMark(fieldName, "Name"))
	b.WriteString("  " + m.name.View() + "\n")
	b.WriteString(focusMark(fieldRelationship, "Relationship"))
	b.WriteString("  " + m.relationship.View() + "\n")
	b.WriteString(focusMark(fieldSeverity, fmt.Sprintf("Severity  %s %d/10", severityBar(m.severity), m.severity)))
	b.WriteString("\n")
	b.WriteString(focusMark(fieldObserved, "What you observed"))
	b.WriteString("\n" + m.observed.View() + "\n")
	b.WriteString(focusMark(fieldNotes, "Extra notes"))
	b.WriteString("\n" + m.extraNotes.View() + "\n")

	if m.note != "" {
		b.WriteString("\n" + labelStyle.Render("Generated note (copy this):") + "\n")
		b.WriteString(m.note)
		if len(m.noteFlags) > 0 {
			b.WriteString(urgentStyle.Render("Warning: red-flag keywords detected: " + strings.Join(m.noteFlags, ", ")))
			b.WriteString("\n")
		}
	}

	if m.savedID != "" {
		b.WriteString(okStyle.Render("Saved journal entry: " + m.savedID))
		b.WriteString("\n")
	}
	if m.saveErr != "" {
		b.WriteString(urgentStyle.Render("Save failed: " + m.saveErr))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\n[tab] next field • [←/→] severity • [ctrl+g] generate • [ctrl+s] save"))
	return b.String()
}

// severityBar renders the bounded 0-10 selector
func severityBar(severity int) string {
	return "[" + strings.Repeat("#", severity) + strings.Repeat("-", 10-severity) + "]"
}

// Run starts the interactive session
func Run(cfg *model.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
