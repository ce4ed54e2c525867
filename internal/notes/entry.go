package notes

import (
	"fmt"
	"strings"
	"time"
)

// Entry represents a caregiver-authored care log entry.
// Values are never mutated after creation; persistence is the caller's concern.
type Entry struct {
	Person       string    `json:"person,omitempty"`       // Person's name (optional)
	Relationship string    `json:"relationship,omitempty"` // Caregiver's relationship (optional)
	Severity     int       `json:"severity"`               // Caregiver-rated severity, expected 0-10
	Observed     string    `json:"observed,omitempty"`     // Free-text observation
	Notes        string    `json:"notes,omitempty"`        // Extra notes (optional)
	CreatedAt    time.Time `json:"created_at"`             // When the entry was generated
}

// NewEntry creates an entry stamped with the current time
func NewEntry(person, relationship, observed string, severity int, notes string) Entry {
	return Entry{
		Person:       person,
		Relationship: relationship,
		Severity:     severity,
		Observed:     observed,
		Notes:        notes,
		CreatedAt:    time.Now(),
	}
}

// Format renders the entry as a fixed Markdown block.
// Optional fields that are empty or whitespace-only render as "N/A".
// Trimming removes leading/trailing whitespace only; interior line
// breaks are preserved. Severity is rendered as given, no range check.
func (e Entry) Format() string {
	return fmt.Sprintf(`## Care Log Entry (%s)

**Person:** %s
**Relationship:** %s
**Severity (caregiver-rated):** %d/10

### What I observed
%s

### Extra notes
%s
`,
		e.CreatedAt.Format("2006-01-02 15:04"),
		orNA(e.Person),
		orNA(e.Relationship),
		e.Severity,
		orNA(e.Observed),
		orNA(e.Notes),
	)
}

// FormatLogEntry builds an entry stamped with the current time and renders it
func FormatLogEntry(person, relationship, observed string, severity int, notes string) string {
	return NewEntry(person, relationship, observed, severity, notes).Format()
}

func orNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	return s
}
