package gridgraph

import "math"

// Run is the private working copy of the node set used by one traversal.
// Searches read and write costs and states on the copy; only parent links
// are written back onto the live grid, so that Grid.Path resolves after the
// run finishes. A Run must not outlive the call that created it.
type Run struct {
	grid       *Grid
	work       []Node
	discovered []bool
	start, end Coord
	order      []Coord
}

// Begin validates start and end, clears the grid's transient state, and
// returns a fresh working copy with every cost at +Inf.
// On error (ErrNoStart, ErrNoEnd, ErrSameStartEnd) the grid is not touched.
// Complexity: O(W×H).
func (g *Grid) Begin() (*Run, error) {
	start, end, err := g.endpoints()
	if err != nil {
		return nil, err
	}
	g.ResetPath()

	r := &Run{
		grid:       g,
		work:       make([]Node, len(g.nodes)),
		discovered: make([]bool, len(g.nodes)),
		start:      start,
		end:        end,
		order:      make([]Coord, 0, len(g.nodes)),
	}
	copy(r.work, g.nodes)

	return r, nil
}

// Start returns the origin of the run.
func (r *Run) Start() Coord { return r.start }

// End returns the target of the run.
func (r *Run) End() Coord { return r.end }

// Neighbors returns the open neighbors of c in the fixed up, right, down, left order.
func (r *Run) Neighbors(c Coord) []Coord { return r.grid.Neighbors(c) }

// Node returns the working-copy node at c.
func (r *Run) Node(c Coord) Node { return r.work[r.grid.index(c)] }

// Discovered reports whether c has been reached (queued, stacked, or relaxed).
func (r *Run) Discovered(c Coord) bool { return r.discovered[r.grid.index(c)] }

// Visited reports whether c has been expanded.
func (r *Run) Visited(c Coord) bool { return r.work[r.grid.index(c)].State == Visited }

// Seed discovers the start node with cost g and heuristic h. It has no parent.
func (r *Run) Seed(g, h float64) {
	i := r.grid.index(r.start)
	r.discovered[i] = true
	r.setCost(i, g, h)
}

// Discover records the first discovery of child from parent and reports
// whether this call was that first discovery. Later calls never overwrite
// the parent, which keeps the parent links a tree.
func (r *Run) Discover(child, parent Coord) bool {
	i := r.grid.index(child)
	if r.discovered[i] {
		return false
	}
	r.discovered[i] = true
	r.link(i, parent)

	return true
}

// DiscoverCost is Discover that also stores the cost and heuristic of child.
func (r *Run) DiscoverCost(child, parent Coord, g, h float64) bool {
	if !r.Discover(child, parent) {
		return false
	}
	r.setCost(r.grid.index(child), g, h)

	return true
}

// Relax lowers the cost of child to g, via parent, only when g is strictly
// smaller than its current cost and child has not been expanded yet.
// It reports whether the relaxation happened. The start node is never relaxed.
func (r *Run) Relax(child, parent Coord, g, h float64) bool {
	if child == r.start {
		return false
	}
	i := r.grid.index(child)
	n := &r.work[i]
	if n.State == Visited || !(g < n.Distance) {
		return false
	}
	r.discovered[i] = true
	r.link(i, parent)
	r.setCost(i, g, h)

	return true
}

// Visit marks c as expanded and appends it to the visited order.
func (r *Run) Visit(c Coord) {
	r.work[r.grid.index(c)].State = Visited
	r.order = append(r.order, c)
}

// Result packages the visited order and the found flag.
func (r *Run) Result(found bool) *SearchResult {
	return &SearchResult{Order: r.order, Found: found}
}

// link writes the parent on the working copy and on the live grid.
func (r *Run) link(i int, parent Coord) {
	r.work[i].Parent, r.work[i].HasParent = parent, true
	live := &r.grid.nodes[i]
	live.Parent, live.HasParent = parent, true
}

func (r *Run) setCost(i int, g, h float64) {
	n := &r.work[i]
	n.Distance = g
	n.Heuristic = h
	if math.IsInf(h, 1) {
		n.Score = math.Inf(1)
		return
	}
	n.Score = g + h
}
