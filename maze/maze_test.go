package maze_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
)

func newGrid(t testing.TB, rows, cols int, start, end gridgraph.Coord) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, cols)
	require.NoError(t, err)
	g.SetStart(start).SetEnd(end)
	return g
}

func sorted(cs []gridgraph.Coord) []gridgraph.Coord {
	out := append([]gridgraph.Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

var kinds = []maze.Kind{maze.KindDivision, maze.KindPrim, maze.KindKruskal}

func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(nil)
	assert.ErrorIs(t, err, maze.ErrNilGrid)

	g, err := gridgraph.NewGrid(5, 5)
	require.NoError(t, err)
	_, err = maze.Generate(g)
	assert.ErrorIs(t, err, gridgraph.ErrNoStart)

	small := newGrid(t, 2, 6, gridgraph.At(0, 0), gridgraph.At(1, 5))
	small.SetWall(gridgraph.At(0, 3))
	_, err = maze.Generate(small)
	assert.ErrorIs(t, err, maze.ErrGridTooSmall)
	assert.ErrorIs(t, err, gridgraph.ErrPrecondition)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 3}}, small.Walls(), "failed call must not touch walls")

	g = newGrid(t, 5, 5, gridgraph.At(0, 0), gridgraph.At(4, 4))
	_, err = maze.Generate(g, maze.WithGap(0))
	assert.ErrorIs(t, err, maze.ErrBadGap)
	_, err = maze.Generate(g, maze.WithMaxRetries(0))
	assert.ErrorIs(t, err, maze.ErrBadRetries)
	_, err = maze.Generate(g, maze.WithKind(maze.Kind(9)))
	assert.ErrorIs(t, err, maze.ErrBadKind)
	assert.Zero(t, g.WallCount())
}

// Every committed maze is solvable, keeps the endpoints open and leaves the
// open cells in a single component.
func TestGenerate_Solvable(t *testing.T) {
	sizes := []struct{ rows, cols int }{{3, 3}, {3, 8}, {4, 7}, {10, 10}, {15, 21}, {22, 9}}
	for _, kind := range kinds {
		for _, sz := range sizes {
			for gap := 1; gap <= 3; gap++ {
				for seed := int64(1); seed <= 8; seed++ {
					start, end := gridgraph.At(0, 1), gridgraph.At(sz.rows-1, sz.cols-2)
					g := newGrid(t, sz.rows, sz.cols, start, end)

					res, err := maze.Generate(g, maze.WithKind(kind), maze.WithGap(gap), maze.WithSeed(seed))
					require.NoError(t, err, "%s %dx%d gap=%d seed=%d", kind, sz.rows, sz.cols, gap, seed)
					assert.Equal(t, kind, res.Kind)
					assert.Equal(t, seed, res.Seed)
					assert.GreaterOrEqual(t, res.Attempts, 1)

					assert.Equal(t, sorted(res.Walls), g.Walls())
					assert.False(t, g.IsWall(start))
					assert.False(t, g.IsWall(end))
					assert.Len(t, g.ConnectedComponents(), 1)

					out, err := bfs.Search(g)
					require.NoError(t, err)
					assert.True(t, out.Found)
				}
			}
		}
	}
}

// Open line ends keep division connected, so the first attempt always commits.
func TestGenerate_DivisionFirstAttempt(t *testing.T) {
	for gap := 1; gap <= 3; gap++ {
		for seed := int64(1); seed <= 64; seed++ {
			g := newGrid(t, 17, 23, gridgraph.At(0, 1), gridgraph.At(16, 21))
			res, err := maze.Generate(g, maze.WithGap(gap), maze.WithMaxRetries(1), maze.WithSeed(seed))
			require.NoError(t, err, "gap=%d seed=%d", gap, seed)
			assert.Equal(t, 1, res.Attempts)
			assert.Len(t, g.ConnectedComponents(), 1, "gap=%d seed=%d", gap, seed)
		}
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	for _, kind := range kinds {
		a := newGrid(t, 17, 23, gridgraph.At(1, 1), gridgraph.At(15, 21))
		b := newGrid(t, 17, 23, gridgraph.At(1, 1), gridgraph.At(15, 21))

		ra, err := maze.Generate(a, maze.WithKind(kind), maze.WithSeed(2024))
		require.NoError(t, err)
		rb, err := maze.Generate(b, maze.WithKind(kind), maze.WithSeed(2024))
		require.NoError(t, err)

		assert.Equal(t, ra.Walls, rb.Walls, kind.String())
		assert.Equal(t, a.String(), b.String())
	}
}

func TestGenerate_DivisionOutlinesBorder(t *testing.T) {
	g := newGrid(t, 9, 12, gridgraph.At(0, 4), gridgraph.At(5, 5))
	res, err := maze.Generate(g, maze.WithSeed(3))
	require.NoError(t, err)

	for r := 0; r < 9; r++ {
		for c := 0; c < 12; c++ {
			if r != 0 && r != 8 && c != 0 && c != 11 {
				continue
			}
			at := gridgraph.At(r, c)
			assert.Equal(t, at != gridgraph.At(0, 4), g.IsWall(at), "border cell %v", at)
		}
	}
	// the border comes first in placement order
	assert.Equal(t, gridgraph.At(0, 0), res.Walls[0])
}

func TestGenerate_CornerEndpoints(t *testing.T) {
	g := newGrid(t, 3, 3, gridgraph.At(0, 0), gridgraph.At(2, 2))
	res, err := maze.Generate(g, maze.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 2}, {Row: 2, Col: 0}}, res.Walls)
	assert.Equal(t, "S.#\n...\n#.E", g.String())
}

func TestGenerate_WideGapLeavesInteriorOpen(t *testing.T) {
	g := newGrid(t, 9, 9, gridgraph.At(1, 1), gridgraph.At(7, 7))
	res, err := maze.Generate(g, maze.WithGap(100), maze.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, res.Walls, 32)
	assert.Equal(t, 32, g.WallCount())
}

func TestGenerate_ReplacesWallsAndClearsSearch(t *testing.T) {
	g := newGrid(t, 11, 11, gridgraph.At(1, 1), gridgraph.At(9, 9))
	g.PlaceWalls(gridgraph.At(5, 5), gridgraph.At(5, 6))
	_, err := bfs.Search(g)
	require.NoError(t, err)

	res, err := maze.Generate(g, maze.WithKind(maze.KindKruskal), maze.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, sorted(res.Walls), g.Walls())

	for r := 0; r < 11; r++ {
		for c := 0; c < 11; c++ {
			n, ok := g.Node(gridgraph.At(r, c))
			require.True(t, ok)
			assert.Equal(t, gridgraph.Unvisited, n.State)
			assert.False(t, n.HasParent)
		}
	}
}

func TestRecursiveDivision(t *testing.T) {
	g := newGrid(t, 15, 15, gridgraph.At(0, 7), gridgraph.At(14, 7))
	assert.True(t, maze.RecursiveDivision(g, 1, 10))
	assert.NotZero(t, g.WallCount())

	empty, err := gridgraph.NewGrid(15, 15)
	require.NoError(t, err)
	assert.False(t, maze.RecursiveDivision(empty, 1, 10))
	assert.False(t, maze.RecursiveDivision(g, 0, 10))
}

func TestParseKind(t *testing.T) {
	for _, k := range kinds {
		got, err := maze.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := maze.ParseKind("Prims")
	require.NoError(t, err)
	assert.Equal(t, maze.KindPrim, got)

	_, err = maze.ParseKind("eller")
	assert.ErrorIs(t, err, maze.ErrBadKind)
	assert.Equal(t, "unknown", maze.Kind(-1).String())
}
