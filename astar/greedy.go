package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Greedy runs greedy best-first search: the frontier is ordered by the
// heuristic alone and a cell keeps the parent it was first reached from.
// It usually expands far fewer cells than A* but the route it leaves on g
// is not guaranteed to be shortest. StepCost is ignored.
func Greedy(g *gridgraph.Grid, opts ...Option) (*gridgraph.SearchResult, error) {
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
	found, err := s.greedy()
	if err != nil {
		return nil, err
	}

	return run.Result(found), nil
}

func (s *searcher) greedy() (bool, error) {
	h, err := s.estimate(s.run.Start())
	if err != nil {
		return false, err
	}
	s.run.Seed(0, h)
	s.open.push(s.run.Start(), h)

	for s.open.Len() > 0 {
		u := s.open.pop().c
		done, err := s.expand(u)
		if done || err != nil {
			return done, err
		}

		depth := s.run.Node(u).Distance + 1
		for _, v := range s.run.Neighbors(u) {
			if s.run.Discovered(v) {
				continue
			}
			hv, err := s.estimate(v)
			if err != nil {
				return false, err
			}
			s.run.DiscoverCost(v, u, depth, hv)
			s.open.push(v, hv)
		}
	}

	return false, nil
}
