package assessment

import (
	"math"

	"github.com/aretw0/dentsim/pkg/domain"
)

// StepReport is the completion status of a single step.
type StepReport struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// ModuleReport summarizes one module.
type ModuleReport struct {
	Title     string       `json:"title"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Steps     []StepReport `json:"steps"`
}

// Report is the scorecard of a session.
type Report struct {
	Name              string         `json:"name"`
	Completed         int            `json:"completed"`
	Total             int            `json:"total"`
	Percent           float64        `json:"percent"`
	Required          int            `json:"required"`
	Passed            bool           `json:"passed"`
	Attempts          int            `json:"attempts"`
	AttemptsRemaining int            `json:"attempts_remaining"`
	Modules           []ModuleReport `json:"modules"`
}

// Score grades a grid against the catalog.
func (c Catalog) Score(g domain.Grid, attempts int) Report {
	r := Report{
		Name:     c.Name,
		Attempts: attempts,
	}
	for mi, m := range c.Modules {
		mr := ModuleReport{Title: m.Title, Total: len(m.Steps)}
		for si, title := range m.Steps {
			done := g.Done(domain.Cell{Module: mi, Step: si})
			if done {
				mr.Completed++
			}
			mr.Steps = append(mr.Steps, StepReport{Title: title, Done: done})
		}
		r.Completed += mr.Completed
		r.Total += mr.Total
		r.Modules = append(r.Modules, mr)
	}

	// Subtract an epsilon so 0.8*35 yields 28, not 29.
	r.Required = int(math.Ceil(c.PassThreshold*float64(r.Total) - 1e-9))
	if r.Total > 0 {
		r.Percent = math.Round(float64(r.Completed)/float64(r.Total)*1000) / 10
	}
	r.Passed = r.Total > 0 && r.Completed >= r.Required
	r.AttemptsRemaining = max(c.MaxAttempts-attempts, 0)
	return r
}
