package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// link sets child's parent directly on the arena, bypassing any Run.
func link(g *Grid, child, parent Coord) {
	n := &g.nodes[g.index(child)]
	n.Parent, n.HasParent = parent, true
}

func TestPath_ParentCycleTerminates(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	link(g, At(0, 2), At(0, 1))
	link(g, At(0, 1), At(0, 2))

	path := g.Path(At(0, 2))
	assert.Equal(t, []Coord{At(0, 1), At(0, 2)}, path)
	assert.LessOrEqual(t, len(path), g.Size())
}

func TestPath_LongCycleVisitsEachCellOnce(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)
	// Every cell points at the next in row-major order; the last wraps to the first.
	for i := 0; i < g.Size(); i++ {
		link(g, g.Coordinate(i), g.Coordinate((i+1)%g.Size()))
	}

	path := g.Path(At(1, 2))
	require.Len(t, path, g.Size())
	seen := map[Coord]bool{}
	for _, c := range path {
		assert.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
	}
	assert.Equal(t, At(1, 2), path[len(path)-1])
}
