package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_MarkIsCopyOnWrite(t *testing.T) {
	g := NewGrid([]int{3, 2})
	c := Cell{Module: 0, Step: 1}

	next, changed := g.Mark(c)
	assert.True(t, changed)
	assert.True(t, next.Done(c))
	assert.False(t, g.Done(c), "original grid must not change")

	again, changed := next.Mark(c)
	assert.False(t, changed)
	assert.True(t, again.Done(c))
}

func TestGrid_OutOfRange(t *testing.T) {
	g := NewGrid([]int{1})

	for _, c := range []Cell{{Module: 5, Step: 0}, {Module: 0, Step: 3}, {Module: 0, Step: -1}} {
		next, changed := g.Mark(c)
		assert.False(t, changed, "cell %v", c)
		assert.False(t, next.Done(c))
	}
}

func TestGrid_Counts(t *testing.T) {
	g := NewGrid([]int{7, 7, 7, 7, 7})
	assert.Equal(t, 35, g.Total())
	assert.Equal(t, 0, g.Completed())

	g, _ = g.Mark(Cell{Module: 2, Step: 0})
	g, _ = g.Mark(Cell{Module: 4, Step: 6})
	assert.Equal(t, 2, g.Completed())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Modules())
}
