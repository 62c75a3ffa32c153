package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Generate builds a maze on g and commits it only if the end is reachable
// from the start.
//
// Each attempt draws a full candidate wall layout, applies it to a clone of g
// and runs a breadth-first search on the clone. The first solvable candidate
// replaces g's walls and g's search state is cleared. When MaxRetries
// candidates all fail, ErrGenerationFailed is returned and g is untouched;
// the same holds for every precondition error.
func Generate(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	gen, err := newGenerator(g, opts)
	if err != nil {
		return nil, err
	}
	return gen.run()
}

// RecursiveDivision generates a recursive-division maze with the given
// passage width and retry limit, and reports whether one was committed.
func RecursiveDivision(g *gridgraph.Grid, gap, maxRetries int) bool {
	_, err := Generate(g, WithKind(KindDivision), WithGap(gap), WithMaxRetries(maxRetries))
	return err == nil
}

// generator holds the state of one Generate call.
type generator struct {
	grid     *gridgraph.Grid
	opts     Options
	rng      *rand.Rand
	seed     int64
	solvable func(*gridgraph.Grid) bool
}

func newGenerator(g *gridgraph.Grid, opts []Option) (*generator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Width() < 3 || g.Height() < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, g.Width(), g.Height())
	}

	gen := &generator{grid: g, opts: cfg, rng: cfg.Rand, solvable: reachable}
	if gen.rng == nil {
		gen.seed = cfg.Seed
		if gen.seed == 0 {
			gen.seed = time.Now().UnixNano()
		}
		gen.rng = rand.New(rand.NewSource(gen.seed))
	}

	return gen, nil
}

func (gen *generator) run() (*Result, error) {
	for attempt := 1; attempt <= gen.opts.MaxRetries; attempt++ {
		walls := gen.build()

		candidate := gen.grid.Clone().ResetWalls().PlaceWalls(walls...)
		if !gen.solvable(candidate) {
			continue
		}

		gen.grid.ResetWalls().PlaceWalls(walls...).ResetPath()
		return &Result{
			Kind:     gen.opts.Kind,
			Walls:    walls,
			Attempts: attempt,
			Seed:     gen.seed,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d attempts on %dx%d",
		ErrGenerationFailed, gen.opts.MaxRetries, gen.grid.Width(), gen.grid.Height())
}

// build draws one candidate layout.
func (gen *generator) build() []gridgraph.Coord {
	b := newBoard(gen.grid)
	switch gen.opts.Kind {
	case KindPrim:
		carvePrim(b, gen.rng)
		return b.collect()
	case KindKruskal:
		carveKruskal(b, gen.rng)
		return b.collect()
	default:
		divide(b, gen.opts.Gap, gen.rng)
		return b.placed
	}
}

// reachable reports whether a breadth-first search on c reaches the end.
func reachable(c *gridgraph.Grid) bool {
	res, err := bfs.Search(c)
	return err == nil && res.Found
}

// board is a wall mask over the grid's cells. Endpoints are never walled.
type board struct {
	rows, cols int
	wall       []bool
	placed     []gridgraph.Coord
	start, end gridgraph.Coord
}

func newBoard(g *gridgraph.Grid) *board {
	start, _ := g.Start()
	end, _ := g.End()
	return &board{
		rows:  g.Width(),
		cols:  g.Height(),
		wall:  make([]bool, g.Size()),
		start: start,
		end:   end,
	}
}

func (b *board) in(r, c int) bool { return r >= 0 && r < b.rows && c >= 0 && c < b.cols }

func (b *board) endpoint(r, c int) bool {
	at := gridgraph.At(r, c)
	return at == b.start || at == b.end
}

// open reports whether (r, c) is inside the board and not walled.
func (b *board) open(r, c int) bool { return b.in(r, c) && !b.wall[r*b.cols+c] }

// put walls (r, c) and records it, unless it is an endpoint or already walled.
func (b *board) put(r, c int) {
	if b.endpoint(r, c) || b.wall[r*b.cols+c] {
		return
	}
	b.wall[r*b.cols+c] = true
	b.placed = append(b.placed, gridgraph.At(r, c))
}

// dig opens (r, c).
func (b *board) dig(r, c int) { b.wall[r*b.cols+c] = false }

// collect lists the walled cells in row-major order.
func (b *board) collect() []gridgraph.Coord {
	out := make([]gridgraph.Coord, 0, len(b.wall)/2)
	for i, w := range b.wall {
		if w {
			out = append(out, gridgraph.At(i/b.cols, i%b.cols))
		}
	}
	return out
}
