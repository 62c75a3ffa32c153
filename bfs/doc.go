// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the visit order and writing parent links onto the grid.
//
// What
//
//   - Explore cells in non-decreasing edge count from the grid's start node.
//   - Returns a gridgraph.SearchResult containing:
//   - Order: cells in the order they were marked visited (dequeued)
//   - Found: whether the end node was dequeued
//   - Leaves parent links on the grid; call Grid.Path(end) to rebuild the route.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Shortest paths in edge-count terms on an unweighted grid.
//   - Reachability checks, e.g. maze solvability.
//
// Determinism
//
//	Neighbors are enumerated up, right, down, left, so the visit sequence is
//	fully reproducible for a fixed grid.
//
// Complexity (V = W×H cells)
//
//   - Time:   O(V)   (each cell and each of its four steps seen at most once)
//   - Memory: O(V)   (queue plus the run's working copy)
//
// Usage
//
//	res, err := bfs.Search(g)
//	if errors.Is(err, gridgraph.ErrPrecondition) {
//	    // ask the user for a start and an end
//	}
//	if res.Found {
//	    path := g.Path(end)
//	}
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - gridgraph.ErrNoStart, ErrNoEnd, ErrSameStartEnd (all wrap ErrPrecondition).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// An unreachable end is not an error: Found is false and Order holds every
// reachable cell.
package bfs
