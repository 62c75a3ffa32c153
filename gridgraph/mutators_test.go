package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func newGrid(t *testing.T, w, h int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(w, h)
	require.NoError(t, err)
	return g
}

// assertInvariant checks role exclusivity across the whole grid.
func assertInvariant(t *testing.T, g *gridgraph.Grid) {
	t.Helper()
	starts, ends := 0, 0
	walls := map[gridgraph.Coord]bool{}
	for _, w := range g.Walls() {
		walls[w] = true
	}
	for r := 0; r < g.Width(); r++ {
		for c := 0; c < g.Height(); c++ {
			n, _ := g.Node(gridgraph.At(r, c))
			switch n.Role {
			case gridgraph.RoleStart:
				starts++
				s, ok := g.Start()
				assert.True(t, ok)
				assert.Equal(t, n.Coord, s)
			case gridgraph.RoleEnd:
				ends++
				e, ok := g.End()
				assert.True(t, ok)
				assert.Equal(t, n.Coord, e)
			}
			assert.Equal(t, n.Role == gridgraph.RoleWall, walls[n.Coord], "wall set out of sync at %v", n.Coord)
		}
	}
	assert.LessOrEqual(t, starts, 1)
	assert.LessOrEqual(t, ends, 1)
}

func TestSetStart_Toggle(t *testing.T) {
	g := newGrid(t, 3, 3)
	n := gridgraph.At(1, 1)
	before := g.Role(n)

	g.SetStart(n)
	assert.Equal(t, gridgraph.RoleStart, g.Role(n))
	s, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, n, s)

	g.SetStart(n)
	assert.Equal(t, before, g.Role(n))
	_, ok = g.Start()
	assert.False(t, ok)
	assertInvariant(t, g)
}

func TestSetStart_Move(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.SetStart(gridgraph.At(0, 0)).SetStart(gridgraph.At(2, 2))

	assert.Equal(t, gridgraph.RoleDefault, g.Role(gridgraph.At(0, 0)))
	assert.Equal(t, gridgraph.RoleStart, g.Role(gridgraph.At(2, 2)))
	s, _ := g.Start()
	assert.Equal(t, gridgraph.At(2, 2), s)
	assertInvariant(t, g)
}

func TestSetStart_OnEndOrWallIsNoop(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.SetEnd(gridgraph.At(0, 0)).SetWall(gridgraph.At(1, 1))

	g.SetStart(gridgraph.At(0, 0))
	assert.Equal(t, gridgraph.RoleEnd, g.Role(gridgraph.At(0, 0)))
	_, ok := g.Start()
	assert.False(t, ok)

	g.SetStart(gridgraph.At(1, 1))
	assert.Equal(t, gridgraph.RoleWall, g.Role(gridgraph.At(1, 1)))
	_, ok = g.Start()
	assert.False(t, ok)
	assertInvariant(t, g)
}

func TestSetEnd_Symmetric(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.SetStart(gridgraph.At(0, 0))

	g.SetEnd(gridgraph.At(0, 0))
	_, ok := g.End()
	assert.False(t, ok, "end must not replace start")

	g.SetEnd(gridgraph.At(1, 0)).SetEnd(gridgraph.At(2, 0))
	e, _ := g.End()
	assert.Equal(t, gridgraph.At(2, 0), e)
	assert.Equal(t, gridgraph.RoleDefault, g.Role(gridgraph.At(1, 0)))

	g.SetEnd(gridgraph.At(2, 0))
	_, ok = g.End()
	assert.False(t, ok)
	assertInvariant(t, g)
}

func TestSetWall_Toggle(t *testing.T) {
	g := newGrid(t, 3, 3)
	c := gridgraph.At(1, 2)

	g.SetWall(c)
	assert.True(t, g.IsWall(c))
	assert.Equal(t, 1, g.WallCount())

	g.SetWall(c)
	assert.False(t, g.IsWall(c))
	assert.Equal(t, gridgraph.RoleDefault, g.Role(c))
	assert.Zero(t, g.WallCount())
}

func TestSetWall_OnEndIsNoop(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(0, 1))

	g.SetWall(gridgraph.At(0, 1))
	assert.Equal(t, gridgraph.RoleEnd, g.Role(gridgraph.At(0, 1)))
	assert.False(t, g.IsWall(gridgraph.At(0, 1)))

	g.SetWall(gridgraph.At(0, 0))
	assert.Equal(t, gridgraph.RoleStart, g.Role(gridgraph.At(0, 0)))
	assertInvariant(t, g)
}

func TestMutators_OutOfBoundsIgnored(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.SetStart(gridgraph.At(5, 5)).SetEnd(gridgraph.At(-1, 0)).SetWall(gridgraph.At(0, 9))

	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
	assert.Zero(t, g.WallCount())
}

func TestPlaceWalls_SkipsEndpointsAndExisting(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(2, 2)).SetWall(gridgraph.At(1, 1))

	g.PlaceWalls(gridgraph.At(0, 0), gridgraph.At(1, 1), gridgraph.At(1, 0), gridgraph.At(2, 2), gridgraph.At(7, 7))
	assert.Equal(t, []gridgraph.Coord{{1, 0}, {1, 1}}, g.Walls())
	assertInvariant(t, g)
}
