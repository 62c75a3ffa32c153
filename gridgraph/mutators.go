package gridgraph

// SetStart toggles the start role on c and returns g.
//
//   - c out of bounds, or c holds the end or a wall: no-op.
//   - c is already the start: the start is unset.
//   - another start exists: it reverts to RoleDefault and c becomes the start.
//
// Exactly one of {no-op, unset, move} happens per call.
func (g *Grid) SetStart(c Coord) *Grid {
	g.setEndpoint(c, RoleStart, &g.start, &g.hasStart)
	return g
}

// SetEnd is the mirror of SetStart for the end role.
func (g *Grid) SetEnd(c Coord) *Grid {
	g.setEndpoint(c, RoleEnd, &g.end, &g.hasEnd)
	return g
}

// setEndpoint implements the shared toggle/move logic of SetStart and SetEnd.
func (g *Grid) setEndpoint(c Coord, role Role, at *Coord, has *bool) {
	if !g.InBounds(c) {
		return
	}
	n := &g.nodes[g.index(c)]
	if n.Role != RoleDefault && n.Role != role {
		return
	}
	if *has && *at == c {
		n.Role = RoleDefault
		*at, *has = Coord{}, false
		return
	}
	if *has {
		g.nodes[g.index(*at)].Role = RoleDefault
	}
	n.Role = role
	*at, *has = c, true
}

// SetWall toggles the wall role on c and returns g.
// Start and end cells are never touched; out-of-bounds coordinates are ignored.
func (g *Grid) SetWall(c Coord) *Grid {
	if !g.InBounds(c) {
		return g
	}
	n := &g.nodes[g.index(c)]
	switch n.Role {
	case RoleStart, RoleEnd:
		// endpoints are never walled
	case RoleWall:
		n.Role = RoleDefault
		delete(g.walls, c)
	default:
		n.Role = RoleWall
		g.walls[c] = struct{}{}
	}

	return g
}

// PlaceWalls walls every listed coordinate that is currently open floor.
// Unlike SetWall it never removes an existing wall.
func (g *Grid) PlaceWalls(cs ...Coord) *Grid {
	for _, c := range cs {
		if g.InBounds(c) && g.nodes[g.index(c)].Role == RoleDefault {
			g.SetWall(c)
		}
	}

	return g
}
