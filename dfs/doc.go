// Package dfs provides depth-first search over a gridgraph.Grid.
//
// Overview:
//
//   - The start cell is pushed onto a LIFO stack. Each pop marks a cell
//     visited and appends it to Order; its undiscovered open neighbors are
//     then pushed in up, right, down, left order, so the left neighbor is
//     explored first.
//   - A cell's parent is set when it is pushed and never overwritten.
//   - The search ends when the end cell is popped (Found) or the stack empties.
//
// Guarantees:
//
//   - A path is found whenever one exists.
//   - The path is NOT necessarily shortest; use bfs, dijkstra, or astar for that.
//   - Visit order is deterministic for a fixed grid.
//
// Complexity:
//
//   - Time:   O(W×H).
//   - Memory: O(W×H).
//
// Options:
//
//   - WithOnPush(fn)            hook on discovery.
//   - WithOnVisit(fn)           hook on pop; error aborts traversal.
//   - WithFilterNeighbor(fn)    skip steps; return false to skip.
//
// Errors:
//
//   - ErrGridNil                if g is nil.
//   - gridgraph.ErrNoStart, ErrNoEnd, ErrSameStartEnd.
//   - Wrapped errors from OnVisit.
package dfs
