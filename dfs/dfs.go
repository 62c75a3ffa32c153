// Package dfs implements depth-first search on a gridgraph.Grid using an
// explicit LIFO stack.
//
// Key features:
//   - Search(g, opts...): traverse from the grid's start until its end is popped
//   - Parents assigned on first discovery, never overwritten
//   - Hooks: OnPush (discovery) & OnVisit (pop) with error aborts
//   - Step filtering via FilterNeighbor
//
// Complexity:
//
//   - Time:   O(V) for V = W×H cells, four steps each.
//   - Memory: O(V) for the stack and the run's working copy.
//
// Errors:
//
//   - ErrGridNil                if g is nil.
//   - gridgraph.ErrPrecondition if start or end is missing or equal.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	run   *gridgraph.Run    // working copy
	opts  Options           // traversal options
	stack []gridgraph.Coord // discovered, not yet visited
}

// Search performs depth-first search on g from its start to its end node.
// It does not guarantee a shortest path, only that a path is found whenever
// one exists. The discovered set doubles as the visited guard, so the cyclic
// grid graph cannot loop.
func Search(g *gridgraph.Grid, opts ...Option) (*gridgraph.SearchResult, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Validate endpoints and take a working copy
	run, err := g.Begin()
	if err != nil {
		return nil, err
	}

	w := &dfsWalker{
		run:   run,
		opts:  dopts,
		stack: make([]gridgraph.Coord, 0, g.Size()),
	}
	run.Seed(0, 0)
	w.push(run.Start())

	// 4. Traverse
	found, err := w.traverse()
	if err != nil {
		return nil, err
	}

	return run.Result(found), nil
}

// traverse pops cells until the end is reached or the stack drains.
func (w *dfsWalker) traverse() (bool, error) {
	for len(w.stack) > 0 {
		// 1. Pop and visit
		id := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.run.Visit(id)

		// 2. Visit hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(id); err != nil {
				return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
			}
		}
		if id == w.run.End() {
			return true, nil
		}

		// 3. Push each undiscovered neighbor
		for _, nid := range w.run.Neighbors(id) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				continue
			}
			if w.run.Discover(nid, id) {
				w.push(nid)
			}
		}
	}

	return false, nil
}

func (w *dfsWalker) push(c gridgraph.Coord) {
	if w.opts.OnPush != nil {
		w.opts.OnPush(c)
	}
	w.stack = append(w.stack, c)
}
