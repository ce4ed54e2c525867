package checkup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkozlova/carewatch/internal/model"
)

// Renderer writes check reports as JSON, Markdown, or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.CheckReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// RenderMarkdown writes the advisory as a shareable Markdown note
func (r *Renderer) RenderMarkdown(report *model.CheckReport, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Quick Check (%s)\n\n", report.CheckedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "**What was entered:**\n\n")
	for _, line := range strings.Split(report.Input, "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## %s\n\n", advisoryHeading(report))
	fmt.Fprintf(&b, "%s\n\n", advisoryBody(report))

	if len(report.RedFlags) > 0 {
		fmt.Fprintf(&b, "**Red-flag matches:** %s\n\n", strings.Join(report.RedFlags, ", "))
	}

	fmt.Fprintf(&b, "## Supportive suggestions (general, non-medical)\n\n")
	for _, s := range report.Suggestions {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\n\n%s\n", model.Disclaimer)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}

// RenderSummary prints a human-readable summary
func (r *Renderer) RenderSummary(w io.Writer, report *model.CheckReport) {
	fmt.Fprintln(w, advisoryHeading(report))
	fmt.Fprintln(w)
	fmt.Fprintln(w, advisoryBody(report))
	fmt.Fprintln(w)

	if len(report.RedFlags) > 0 {
		fmt.Fprintf(w, "Red-flag matches: %s\n\n", strings.Join(report.RedFlags, ", "))
	}

	fmt.Fprintln(w, "Supportive suggestions (general, non-medical):")
	for _, s := range report.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "\n%s\n", model.Disclaimer)
	}
}

// advisoryHeading is the first line of the canned advisory
func advisoryHeading(report *model.CheckReport) string {
	heading, _, _ := strings.Cut(report.Advisory, "\n")
	return heading
}

// advisoryBody is the canned advisory without its first line
func advisoryBody(report *model.CheckReport) string {
	_, body, _ := strings.Cut(report.Advisory, "\n")
	return strings.TrimSpace(body)
}
