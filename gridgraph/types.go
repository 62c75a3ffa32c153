// Package gridgraph defines the node, role, and grid types shared by the
// search and maze packages of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"fmt"
	"math"
)

// Coord addresses a cell of the grid. It doubles as the node identity.
type Coord struct {
	Row, Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Role classifies a node. Exactly one role applies at a time.
type Role int

const (
	// RoleDefault is an open floor cell.
	RoleDefault Role = iota
	// RoleStart marks the search origin.
	RoleStart
	// RoleEnd marks the search target.
	RoleEnd
	// RoleWall marks an impassable cell.
	RoleWall
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleWall:
		return "wall"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// SearchState is the transient, per-run classification of a node.
type SearchState int

const (
	// Unvisited nodes have not been reached by the last run.
	Unvisited SearchState = iota
	// Visited nodes were expanded by the last run.
	Visited
	// OnPath nodes belong to the reconstructed path.
	OnPath
)

// String returns the lower-case state name.
func (s SearchState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Visited:
		return "visited"
	case OnPath:
		return "path"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Node is one grid cell. Parent is a coordinate back-reference, valid only
// when HasParent is true; it never points at a Node value.
type Node struct {
	Coord
	Role  Role
	State SearchState

	Distance  float64 // g: accumulated cost from start
	Heuristic float64 // h: estimated cost to end
	Score     float64 // f = g + h

	Parent    Coord
	HasParent bool
}

// IsWall reports whether the node blocks traversal.
func (n Node) IsWall() bool { return n.Role == RoleWall }

// clearSearch resets the per-run fields of n.
func (n *Node) clearSearch() {
	n.State = Unvisited
	n.Distance = math.Inf(1)
	n.Heuristic = math.Inf(1)
	n.Score = math.Inf(1)
	n.Parent = Coord{}
	n.HasParent = false
}

// neighborOffsets enumerates up, right, down, left. Every search relies on
// this order for a deterministic visited sequence.
var neighborOffsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a fixed-size arena of nodes addressed by Coord.
// Width is the number of rows and Height the number of columns.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	nodes         []Node

	start, end       Coord
	hasStart, hasEnd bool
	walls            map[Coord]struct{}
}

// SearchResult is the outcome of one traversal run: the nodes in the order
// they were marked visited, and whether the end node was reached.
type SearchResult struct {
	Order []Coord
	Found bool
}
