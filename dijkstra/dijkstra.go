// Package dijkstra implements Dijkstra's shortest-path algorithm on a gridgraph.Grid.
//
// It processes cells in order of increasing distance using a min-heap priority
// queue, relaxing steps and updating distances accordingly. Equal distances are
// popped in insertion order, so the visit sequence is deterministic.
//
// Notes on implementation choices:
//
//   - Walls are impassable; every other step is charged Options.StepCost.
//   - We stop as soon as the end cell is popped: its distance is then final.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search computes the shortest route from g's start node to its end node.
//
// Returns:
//
//   - res.Order: cells in the order their distance was finalized.
//   - res.Found: whether the end node was reached.
//   - err: gridgraph precondition errors, ErrNilGrid, ErrNegativeWeight,
//     or a wrapped OnVisit error.
//
// Parent links are left on g; g.Path(end) rebuilds the route.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, opts ...Option) (*gridgraph.SearchResult, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate endpoints and take the working copy
	run, err := g.Begin()
	if err != nil {
		return nil, err
	}

	// 4) Initialize runner and run main loop.
	r := &runner{
		run:     run,
		options: cfg,
		pq:      make(nodePQ, 0, g.Size()),
	}
	r.init()
	found, err := r.process()
	if err != nil {
		return nil, err
	}

	return run.Result(found), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	run     *gridgraph.Run // Working copy: distances, parents, visited flags.
	options Options        // Configuration options.
	pq      nodePQ         // Min-heap of *nodeItem for lazy priority queue.
	seq     int            // Insertion counter for deterministic tie-breaks.
}

// init sets the start distance to zero and pushes it onto the heap.
// Every other distance is already +Inf in the working copy.
func (r *runner) init() {
	r.run.Seed(0, 0)
	heap.Init(&r.pq)
	r.push(r.run.Start(), 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the cell
// with the minimum distance from the start and relaxes its steps.
//
// Loop termination conditions:
//
//   - The end cell is popped (found).
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.c

		// 2) If this cell was already visited (finalized), skip stale heap entry.
		if r.run.Visited(u) {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring any further cells.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance is now final.
		r.run.Visit(u)
		if r.options.OnVisit != nil {
			if err := r.options.OnVisit(u, item.dist); err != nil {
				return false, fmt.Errorf("dijkstra: OnVisit error at %v: %w", u, err)
			}
		}
		if u == r.run.End() {
			return true, nil
		}

		// 5) Relax all steps out of u.
		if err := r.relax(u, item.dist); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax examines each open step out of u and attempts to improve distances to its neighbors.
// A neighbor is updated only if the new tentative distance is strictly smaller.
func (r *runner) relax(u gridgraph.Coord, du float64) error {
	for _, v := range r.run.Neighbors(u) {
		w := r.options.StepCost(u, v)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: step %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}
		// Infinite steps are impassable.
		if math.IsInf(w, 1) {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if r.run.Relax(v, u, newDist, 0) {
			r.push(v, newDist)
		}
	}

	return nil
}

func (r *runner) push(c gridgraph.Coord, dist float64) {
	heap.Push(&r.pq, &nodeItem{c: c, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a cell and its tentative distance from the start.
type nodeItem struct {
	c    gridgraph.Coord // cell
	dist float64         // distance from start
	seq  int             // push order, breaks ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
// We use the “lazy-decrease-key” approach: when we find a shorter distance to an existing cell,
// we push a new *nodeItem onto the heap. The outdated entry remains but is ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties go to the earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
