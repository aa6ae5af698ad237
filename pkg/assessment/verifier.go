package assessment

import (
	"github.com/aretw0/dentsim/pkg/domain"
)

// Verifier evaluates a rule table against transitions.
type Verifier struct {
	byKind map[domain.Kind][]Rule
}

// NewVerifier indexes the rules by action kind, preserving table order.
func NewVerifier(rules []Rule) *Verifier {
	v := &Verifier{byKind: make(map[domain.Kind][]Rule)}
	for _, r := range rules {
		v.byKind[r.Kind] = append(v.byKind[r.Kind], r)
	}
	return v
}

// Evaluate returns the cells whose rules match the evidence, without duplicates.
func (v *Verifier) Evaluate(ev Evidence) []domain.Cell {
	if v == nil || ev.Action == nil {
		return nil
	}
	var cells []domain.Cell
	seen := make(map[domain.Cell]bool)
	for _, r := range v.byKind[ev.Action.Kind()] {
		if seen[r.Cell] || !r.When(ev) {
			continue
		}
		seen[r.Cell] = true
		cells = append(cells, r.Cell)
	}
	return cells
}

// Fold marks cells on the grid and returns the new grid together with the
// cells that actually flipped from false to true.
func Fold(g domain.Grid, cells []domain.Cell) (domain.Grid, []domain.Cell) {
	var flipped []domain.Cell
	for _, c := range cells {
		var changed bool
		g, changed = g.Mark(c)
		if changed {
			flipped = append(flipped, c)
		}
	}
	return g, flipped
}

// Rules returns the number of rules registered for a kind.
func (v *Verifier) Rules(kind domain.Kind) int {
	return len(v.byKind[kind])
}
