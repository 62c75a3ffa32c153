// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the visit order and leaving parent links on the grid.
//
// BFS explores cells in increasing edge count from the start, with optional
// hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     gridgraph.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	run   *gridgraph.Run
	opts  Options
	queue []queueItem
}

// Search runs breadth-first search on g from its start node to its end node,
// applying any number of functional Options.
//
// A cell is marked visited when dequeued; its parent is assigned the first
// time it is discovered and never overwritten. The search stops when the end
// node is dequeued (Found) or the queue drains (not Found, nil error).
//
// Returns ErrGridNil, ErrOptionViolation, a gridgraph.ErrPrecondition error
// when start or end is missing or equal, or any user-supplied hook error.
func Search(g *gridgraph.Grid, opts ...Option) (*gridgraph.SearchResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	run, err := g.Begin()
	if err != nil {
		return nil, err
	}
	w := &walker{
		run:   run,
		opts:  o,
		queue: make([]queueItem, 0, g.Size()),
	}

	// Seed queue with start cell (no parent)
	run.Seed(0, 0)
	w.opts.OnEnqueue(run.Start(), 0)
	w.queue = append(w.queue, queueItem{c: run.Start()})

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	return run.Result(found), nil
}

// loop processes the queue until the end is dequeued, the queue drains, or a hook fails.
func (w *walker) loop() (bool, error) {
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		w.run.Visit(item.c)
		if err := w.opts.OnVisit(item.c, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
		}
		if item.c == w.run.End() {
			return true, nil
		}
		w.enqueueNeighbors(item)
	}
	return false, nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each undiscovered neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.run.Neighbors(item.c) {
		if !w.opts.FilterNeighbor(item.c, nbr) {
			continue
		}
		// first time seen?
		if w.run.DiscoverCost(nbr, item.c, float64(nextDepth), 0) {
			w.opts.OnEnqueue(nbr, nextDepth)
			w.queue = append(w.queue, queueItem{c: nbr, depth: nextDepth})
		}
	}
}
