package domain

import "sort"

// Cell addresses one step of one assessment module.
type Cell struct {
	Module int `json:"module"`
	Step   int `json:"step"`
}

// Grid is the assessment progress matrix: module index to per-step completion.
// A Grid value is treated as immutable; Mark returns a modified copy.
type Grid map[int][]bool

// NewGrid builds an all-false grid with the given number of steps per module.
func NewGrid(stepsPerModule []int) Grid {
	g := make(Grid, len(stepsPerModule))
	for i, n := range stepsPerModule {
		g[i] = make([]bool, n)
	}
	return g
}

// Done reports whether a cell is marked. Cells outside the grid are never done.
func (g Grid) Done(c Cell) bool {
	steps, ok := g[c.Module]
	if !ok || c.Step < 0 || c.Step >= len(steps) {
		return false
	}
	return steps[c.Step]
}

// Mark returns a grid with the cell set to true and whether anything changed.
// Marking an already-true cell returns g itself. Cells outside the grid are ignored.
func (g Grid) Mark(c Cell) (Grid, bool) {
	steps, ok := g[c.Module]
	if !ok || c.Step < 0 || c.Step >= len(steps) || steps[c.Step] {
		return g, false
	}

	next := make(Grid, len(g))
	for k, v := range g {
		next[k] = v
	}
	row := make([]bool, len(steps))
	copy(row, steps)
	row[c.Step] = true
	next[c.Module] = row
	return next, true
}

// Completed counts the marked cells.
func (g Grid) Completed() int {
	n := 0
	for _, steps := range g {
		for _, done := range steps {
			if done {
				n++
			}
		}
	}
	return n
}

// Total counts all cells.
func (g Grid) Total() int {
	n := 0
	for _, steps := range g {
		n += len(steps)
	}
	return n
}

// Modules returns the module indices in ascending order.
func (g Grid) Modules() []int {
	keys := make([]int, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	next := make(Grid, len(g))
	for k, v := range g {
		row := make([]bool, len(v))
		copy(row, v)
		next[k] = row
	}
	return next
}
