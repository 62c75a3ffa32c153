package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* from g's start node to its end node.
//
// The frontier is ordered by f = g + h, ties broken by push order. h is
// computed once, when a cell is first reached. A neighbor is relaxed only when
// its tentative g is strictly smaller than the one it has. With an admissible
// heuristic the route left on g (see Grid.Path) is a shortest one.
//
// Complexity: O(V log V) time, O(V) space.
func Search(g *gridgraph.Grid, opts ...Option) (*gridgraph.SearchResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	run, err := g.Begin()
	if err != nil {
		return nil, err
	}

	s := &searcher{run: run, options: cfg, open: newFrontier(g.Size())}
	found, err := s.astar()
	if err != nil {
		return nil, err
	}

	return run.Result(found), nil
}

// searcher holds per-run state for A* and Greedy.
type searcher struct {
	run     *gridgraph.Run
	options Options
	open    *frontier
}

func (s *searcher) astar() (bool, error) {
	h, err := s.estimate(s.run.Start())
	if err != nil {
		return false, err
	}
	s.run.Seed(0, h)
	s.open.push(s.run.Start(), h)

	for s.open.Len() > 0 {
		u := s.open.pop().c
		if s.run.Visited(u) {
			continue
		}
		done, err := s.expand(u)
		if done || err != nil {
			return done, err
		}

		gu := s.run.Node(u).Distance
		for _, v := range s.run.Neighbors(u) {
			w := s.options.StepCost(u, v)
			if w < 0 || math.IsNaN(w) {
				return false, fmt.Errorf("%w: step %v→%v weight=%v", ErrNegativeWeight, u, v, w)
			}
			if math.IsInf(w, 1) {
				continue
			}

			hv := s.run.Node(v).Heuristic
			if !s.run.Discovered(v) {
				if hv, err = s.estimate(v); err != nil {
					return false, err
				}
			}
			if s.run.Relax(v, u, gu+w, hv) {
				s.open.push(v, gu+w+hv)
			}
		}
	}

	return false, nil
}

// expand marks u visited, runs the hook and reports whether u is the end.
func (s *searcher) expand(u gridgraph.Coord) (bool, error) {
	s.run.Visit(u)
	if s.options.OnVisit != nil {
		if err := s.options.OnVisit(u); err != nil {
			return false, fmt.Errorf("astar: OnVisit error at %v: %w", u, err)
		}
	}
	return u == s.run.End(), nil
}

func (s *searcher) estimate(c gridgraph.Coord) (float64, error) {
	h := s.options.Heuristic(c, s.run.End())
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: h(%v)=%v", ErrBadHeuristic, c, h)
	}
	return h, nil
}
