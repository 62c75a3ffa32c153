// Package maze generates walls on a gridgraph.Grid and commits them only when
// the end cell stays reachable from the start.
//
// Three generators are available:
//
//   - KindDivision: recursive division. The border is walled, then the
//     interior is split again and again by straight walls, each leaving a
//     passage of width Gap, until regions are too small to split.
//   - KindPrim:     randomized Prim over a lattice of rooms on odd coordinates.
//   - KindKruskal:  randomized Kruskal over the same lattice, using a
//     disjoint-set forest.
//
// Every candidate is checked with a breadth-first search on a clone of the
// grid. The first solvable candidate replaces the grid's walls and clears its
// search state; after MaxRetries unsolvable candidates Generate returns
// ErrGenerationFailed and the grid is unchanged.
//
// Randomness comes from WithRand, or from WithSeed (0 means time-seeded), so
// a fixed seed always yields the same maze for the same grid.
//
// Errors:
//
//   - ErrNilGrid, ErrGridTooSmall (wraps gridgraph.ErrPrecondition) and the
//     gridgraph endpoint errors, before anything is touched.
//   - ErrBadKind, ErrBadGap, ErrBadRetries for invalid options.
//   - ErrGenerationFailed when no candidate was solvable.
package maze
