package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// wallColumn walls every cell of column col.
func wallColumn(g *gridgraph.Grid, col int) {
	for r := 0; r < g.Width(); r++ {
		g.SetWall(gridgraph.At(r, col))
	}
}

// TestConnectedComponents_Open verifies an open grid is one component.
func TestConnectedComponents_Open(t *testing.T) {
	g := newGrid(t, 3, 4)
	comps := g.ConnectedComponents()
	if assert.Len(t, comps, 1) {
		assert.Len(t, comps[0], 12)
	}
}

// TestConnectedComponents_Partition verifies a full wall column splits the grid.
func TestConnectedComponents_Partition(t *testing.T) {
	g := newGrid(t, 3, 5)
	wallColumn(g, 2)

	comps := g.ConnectedComponents()
	if assert.Len(t, comps, 2) {
		assert.Len(t, comps[0], 6)
		assert.Len(t, comps[1], 6)
		assert.Equal(t, gridgraph.At(0, 0), comps[0][0])
		assert.Equal(t, gridgraph.At(0, 3), comps[1][0])
	}
}

// TestReachable_FloodOrder verifies breadth-first flood order from a corner.
func TestReachable_FloodOrder(t *testing.T) {
	g := newGrid(t, 2, 2)
	got := g.Reachable(gridgraph.At(0, 0))
	assert.Equal(t, []gridgraph.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)

	g.SetWall(gridgraph.At(1, 1))
	assert.Nil(t, g.Reachable(gridgraph.At(1, 1)))
	assert.Nil(t, g.Reachable(gridgraph.At(5, 5)))
}

// TestConnected checks connectivity across a partition.
func TestConnected(t *testing.T) {
	g := newGrid(t, 3, 5)
	assert.True(t, g.Connected(gridgraph.At(0, 0), gridgraph.At(2, 4)))

	wallColumn(g, 2)
	assert.False(t, g.Connected(gridgraph.At(0, 0), gridgraph.At(2, 4)))
	assert.True(t, g.Connected(gridgraph.At(0, 0), gridgraph.At(2, 1)))
	assert.False(t, g.Connected(gridgraph.At(0, 0), gridgraph.At(0, 2)), "walls are never reachable")
}
