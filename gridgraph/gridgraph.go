// Package gridgraph models a mutable 2-D grid of nodes as an implicit
// 4-connected graph. It supports:
//
//   - Start, end, and wall roles with mutual exclusivity
//   - A fixed up, right, down, left neighbor order
//   - Per-run working copies for the search packages
//   - Parent-chain path reconstruction and state resets
//
// Cells with the wall role are impassable; every other cell is open floor.
package gridgraph

import (
	"fmt"
	"sort"
)

// NewGrid constructs a grid of width rows and height columns with every node
// Default and Unvisited, and no start, end, or walls.
// Returns ErrEmptyGrid if either dimension is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
		walls:  make(map[Coord]struct{}),
	}
	for i := range g.nodes {
		g.nodes[i].Coord = g.Coordinate(i)
		g.nodes[i].clearSearch()
	}

	return g, nil
}

// Width returns the number of rows.
func (g *Grid) Width() int { return g.width }

// Height returns the number of columns.
func (g *Grid) Height() int { return g.height }

// Size returns the number of nodes, Width×Height.
func (g *Grid) Size() int { return len(g.nodes) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.width && c.Col >= 0 && c.Col < g.height
}

// Check returns ErrOutOfBounds, wrapped with the coordinate, if c is outside the grid.
func (g *Grid) Check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return nil
}

// index maps c to a row-major index: Row*Height + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.height + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.height, Col: idx % g.height}
}

// Node returns a copy of the node at c and whether c is in bounds.
func (g *Grid) Node(c Coord) (Node, bool) {
	if !g.InBounds(c) {
		return Node{}, false
	}
	return g.nodes[g.index(c)], true
}

// Role returns the role of c, or RoleDefault if c is out of bounds.
func (g *Grid) Role(c Coord) Role {
	if !g.InBounds(c) {
		return RoleDefault
	}
	return g.nodes[g.index(c)].Role
}

// Start returns the start coordinate and whether one is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// End returns the end coordinate and whether one is set.
func (g *Grid) End() (Coord, bool) { return g.end, g.hasEnd }

// IsWall reports whether c holds a wall.
func (g *Grid) IsWall(c Coord) bool {
	_, ok := g.walls[c]
	return ok
}

// WallCount returns the number of walls.
func (g *Grid) WallCount() int { return len(g.walls) }

// Walls returns the wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	out := make([]Coord, 0, len(g.walls))
	for c := range g.walls {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return g.index(out[i]) < g.index(out[j])
	})

	return out
}

// Neighbors returns the open orthogonal neighbors of c in up, right, down,
// left order, skipping out-of-bounds cells and walls.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(n) || g.nodes[g.index(n)].Role == RoleWall {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Clone returns a deep copy of g, including transient search state.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		width:    g.width,
		height:   g.height,
		nodes:    make([]Node, len(g.nodes)),
		start:    g.start,
		end:      g.end,
		hasStart: g.hasStart,
		hasEnd:   g.hasEnd,
		walls:    make(map[Coord]struct{}, len(g.walls)),
	}
	copy(cp.nodes, g.nodes)
	for c := range g.walls {
		cp.walls[c] = struct{}{}
	}

	return cp
}

// endpoints validates that start and end are both set and distinct.
func (g *Grid) endpoints() (Coord, Coord, error) {
	switch {
	case !g.hasStart:
		return Coord{}, Coord{}, ErrNoStart
	case !g.hasEnd:
		return Coord{}, Coord{}, ErrNoEnd
	case g.start == g.end:
		return Coord{}, Coord{}, ErrSameStartEnd
	}
	return g.start, g.end, nil
}

// Validate reports the first precondition a traversal would fail on,
// or nil when start and end are set and distinct.
func (g *Grid) Validate() error {
	_, _, err := g.endpoints()
	return err
}
