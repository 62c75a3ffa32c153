package gridgraph

// Every reset below mutates in place, never reallocates the arena, and is
// idempotent.

// ResetPath clears search state only: SearchState, costs, and parent links.
func (g *Grid) ResetPath() *Grid {
	for i := range g.nodes {
		g.nodes[i].clearSearch()
	}
	return g
}

// ResetGrid clears search state and the wall role. Start and end are roles
// too but are kept in place; ResetAll clears them as well.
func (g *Grid) ResetGrid() *Grid {
	return g.ResetPath().ResetWalls()
}

// ResetWalls turns every wall back into open floor.
func (g *Grid) ResetWalls() *Grid {
	for c := range g.walls {
		g.nodes[g.index(c)].Role = RoleDefault
	}
	clear(g.walls)

	return g
}

// ResetStartEnd unsets the start and end nodes.
func (g *Grid) ResetStartEnd() *Grid {
	if g.hasStart {
		g.nodes[g.index(g.start)].Role = RoleDefault
	}
	if g.hasEnd {
		g.nodes[g.index(g.end)].Role = RoleDefault
	}
	g.start, g.hasStart = Coord{}, false
	g.end, g.hasEnd = Coord{}, false

	return g
}

// ResetAll clears everything: search state, walls, start, and end.
func (g *Grid) ResetAll() *Grid {
	return g.ResetPath().ResetWalls().ResetStartEnd()
}
