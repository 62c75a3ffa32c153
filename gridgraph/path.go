package gridgraph

// Path reconstructs the route ending at end by walking parent links back to
// the root, and returns it in start→end order.
//
// A single-element result means end has no parent, i.e. no path was found;
// callers must not assume a non-trivial path exists. Out-of-bounds end yields nil.
// The walk keeps a visited set and stops after Size() steps, so a corrupted
// parent chain can never loop.
// Complexity: O(L) for a path of length L.
func (g *Grid) Path(end Coord) []Coord {
	if !g.InBounds(end) {
		return nil
	}
	seen := make(map[Coord]bool)
	path := []Coord{}
	for cur, steps := end, 0; steps < len(g.nodes); steps++ {
		if seen[cur] {
			break
		}
		seen[cur] = true
		path = append(path, cur)
		n := g.nodes[g.index(cur)]
		if !n.HasParent {
			break
		}
		cur = n.Parent
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// MarkVisited sets the Visited state on each listed node, as the caller
// replays a SearchResult.Order.
func (g *Grid) MarkVisited(cs ...Coord) *Grid {
	g.mark(Visited, cs)
	return g
}

// MarkPath sets the OnPath state on each listed node.
func (g *Grid) MarkPath(cs ...Coord) *Grid {
	g.mark(OnPath, cs)
	return g
}

func (g *Grid) mark(s SearchState, cs []Coord) {
	for _, c := range cs {
		if g.InBounds(c) {
			g.nodes[g.index(c)].State = s
		}
	}
}
