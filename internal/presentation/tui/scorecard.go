package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/dentsim/pkg/assessment"
	"github.com/aretw0/dentsim/pkg/domain"
)

// Scorecard formats a report as markdown: a summary followed by one
// checklist per module.
func Scorecard(r assessment.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	verdict := "**Not yet passed**"
	if r.Passed {
		verdict = "**Passed**"
	}
	fmt.Fprintf(&b, "%s: %d of %d tasks (%.1f%%), %d required.\n\n", verdict, r.Completed, r.Total, r.Percent, r.Required)
	fmt.Fprintf(&b, "Attempts used: %d, remaining: %d.\n\n", r.Attempts, r.AttemptsRemaining)

	for _, m := range r.Modules {
		fmt.Fprintf(&b, "## %s (%d/%d)\n\n", m.Title, m.Completed, m.Total)
		for _, s := range m.Steps {
			mark := " "
			if s.Done {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, s.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Outcome formats a single dispatch result as one markdown line.
func Outcome(out domain.Outcome, catalog assessment.Catalog) string {
	var b strings.Builder
	status := "applied"
	if !out.Applied {
		status = "skipped"
	}
	fmt.Fprintf(&b, "`%s` %s", out.Kind, status)
	for _, c := range out.Verified {
		fmt.Fprintf(&b, ", completed *%s*", catalog.StepTitle(c))
	}
	for _, d := range out.Diagnostics {
		fmt.Fprintf(&b, ", %s (%s)", d.Message, d.Code)
	}
	return b.String()
}

// WriteMarkdown renders md through glamour when w is a terminal and writes
// it verbatim otherwise.
func WriteMarkdown(w io.Writer, md string) error {
	if IsTerminal(w) {
		render, err := NewRenderer(terminalWidth(w))
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(w, md)
	return err
}
