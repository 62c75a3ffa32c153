// Package gridgraph treats a fixed-size 2-D grid of cells as a graph and
// holds all state the search and maze packages operate on.
//
// What:
//
//   - Grid is a flat arena of Nodes addressed by Coord (row-major).
//   - Each node carries a Role (default, start, end, wall) and transient
//     search bookkeeping (state, g, h, f, parent coordinate).
//   - SetStart, SetEnd, and SetWall keep roles mutually exclusive: at most one
//     start, at most one end, and neither is ever a wall.
//   - Begin hands a search a private working copy (Run); only parent links
//     are written back, so Path can rebuild the route afterwards.
//   - Reset* clear chosen subsets of state without reallocating.
//
// Why:
//
//   - Visualizers: replay Order then Path to animate a search.
//   - Teaching: compare BFS, DFS, Dijkstra, and A* on the same board.
//
// Complexity:
//
//   - NewGrid, Clone, Begin, ResetPath:  O(W×H).
//   - Neighbors, SetStart/SetEnd/SetWall: O(1).
//   - Path:                               O(L), L = path length.
//   - ConnectedComponents:                O(W×H×4), Memory: O(W×H).
//
// Neighbor order:
//
//   - Up, right, down, left, skipping walls and out-of-bounds cells. Every
//     search uses this order, which makes visited order deterministic.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrOutOfBounds: coordinate outside the grid (Check).
//   - ErrPrecondition: parent of ErrNoStart, ErrNoEnd, ErrSameStartEnd.
package gridgraph
