package gridgraph

// ConnectedComponents finds all contiguous regions of open (non-wall) cells
// under 4-connectivity. Components are listed in row-major order of their
// first cell; each component is a slice of coordinates in flood order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.nodes))
	var comps [][]Coord

	for i := range g.nodes {
		if g.nodes[i].Role == RoleWall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}

	return comps
}

// Reachable returns every open cell reachable from c, including c itself,
// in breadth-first order. Returns nil if c is out of bounds or a wall.
func (g *Grid) Reachable(c Coord) []Coord {
	if !g.InBounds(c) || g.IsWall(c) {
		return nil
	}
	return g.flood(g.index(c), make([]bool, len(g.nodes)))
}

// Connected reports whether a path of open cells joins a and b.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(b) || g.IsWall(b) {
		return false
	}
	for _, c := range g.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}

// flood collects the component containing index i0, marking seen as it goes.
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	queue := []int{i0}
	seen[i0] = true
	var comp []Coord

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		comp = append(comp, u)
		for _, v := range g.Neighbors(u) {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return comp
}
