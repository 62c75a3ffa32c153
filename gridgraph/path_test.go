package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walkRow discovers and visits (0,0)→(0,n-1) through a Run, as a search would.
func walkRow(t *testing.T, g *gridgraph.Grid, n int) *gridgraph.Run {
	t.Helper()
	r, err := g.Begin()
	require.NoError(t, err)
	r.Seed(0, 0)
	r.Visit(gridgraph.At(0, 0))
	for c := 1; c < n; c++ {
		require.True(t, r.Discover(gridgraph.At(0, c), gridgraph.At(0, c-1)))
		r.Visit(gridgraph.At(0, c))
	}
	return r
}

func TestPath_NoParent(t *testing.T) {
	g := newGrid(t, 3, 3)
	end := gridgraph.At(2, 2)
	assert.Equal(t, []gridgraph.Coord{end}, g.Path(end))
	assert.Nil(t, g.Path(gridgraph.At(3, 3)))
}

func TestPath_FollowsParents(t *testing.T) {
	g := newGrid(t, 1, 4)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(0, 3))
	walkRow(t, g, 4)

	want := []gridgraph.Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	first := g.Path(gridgraph.At(0, 3))
	assert.Equal(t, want, first)
	// idempotent without an intervening traversal
	assert.Equal(t, first, g.Path(gridgraph.At(0, 3)))
}

func TestRun_BeginPreconditions(t *testing.T) {
	g := newGrid(t, 2, 2)
	_, err := g.Begin()
	assert.ErrorIs(t, err, gridgraph.ErrNoStart)

	g.SetStart(gridgraph.At(0, 0))
	_, err = g.Begin()
	assert.ErrorIs(t, err, gridgraph.ErrNoEnd)
}

func TestRun_BeginClearsStaleState(t *testing.T) {
	g := newGrid(t, 1, 3)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(0, 2))
	walkRow(t, g, 3)
	g.MarkPath(g.Path(gridgraph.At(0, 2))...)

	_, err := g.Begin()
	require.NoError(t, err)
	for c := 0; c < 3; c++ {
		n, _ := g.Node(gridgraph.At(0, c))
		assert.False(t, n.HasParent, "stale parent at %v", n.Coord)
		assert.Equal(t, gridgraph.Unvisited, n.State)
	}
}

func TestRun_DiscoverNeverOverwrites(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(1, 1))
	r, err := g.Begin()
	require.NoError(t, err)
	r.Seed(0, 0)

	assert.True(t, r.Discover(gridgraph.At(0, 1), gridgraph.At(0, 0)))
	assert.False(t, r.Discover(gridgraph.At(0, 1), gridgraph.At(1, 1)))
	assert.False(t, r.Discover(gridgraph.At(0, 0), gridgraph.At(0, 1)), "start is seeded")

	n, _ := g.Node(gridgraph.At(0, 1))
	assert.Equal(t, gridgraph.At(0, 0), n.Parent)
	s, _ := g.Node(gridgraph.At(0, 0))
	assert.False(t, s.HasParent)
}

func TestRun_RelaxStrictlySmaller(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(1, 1))
	r, err := g.Begin()
	require.NoError(t, err)
	r.Seed(0, 0)

	c := gridgraph.At(1, 1)
	assert.True(t, r.Relax(c, gridgraph.At(0, 1), 2, 0))
	assert.False(t, r.Relax(c, gridgraph.At(1, 0), 2, 0), "equal cost keeps the first parent")
	assert.True(t, r.Relax(c, gridgraph.At(1, 0), 1, 0.5))
	assert.Equal(t, 1.5, r.Node(c).Score)
	assert.Equal(t, gridgraph.At(1, 0), r.Node(c).Parent)

	r.Visit(c)
	assert.False(t, r.Relax(c, gridgraph.At(0, 1), 0.5, 0), "visited nodes are final")
	assert.False(t, r.Relax(gridgraph.At(0, 0), c, -1, 0), "start is never relaxed")

	// live grid only receives the parent, not costs
	live, _ := g.Node(c)
	assert.Equal(t, gridgraph.At(1, 0), live.Parent)
	assert.True(t, math.IsInf(live.Distance, 1))
	assert.Equal(t, gridgraph.Unvisited, live.State)
}

func TestRun_Result(t *testing.T) {
	g := newGrid(t, 1, 3)
	g.SetStart(gridgraph.At(0, 0)).SetEnd(gridgraph.At(0, 2))
	r := walkRow(t, g, 3)

	res := r.Result(true)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Coord{{0, 0}, {0, 1}, {0, 2}}, res.Order)
	assert.True(t, r.Visited(gridgraph.At(0, 2)))
	assert.True(t, r.Discovered(gridgraph.At(0, 1)))
}
