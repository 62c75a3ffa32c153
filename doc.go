// Package gridpath is the algorithm core of a grid pathfinding and maze
// visualizer: a mutable 2-D board of cells, four classic searches plus a
// greedy one, path reconstruction, and maze generators that only ever commit
// solvable mazes.
//
// 🚀 What is inside?
//
//	• gridgraph: the board (Coord, Node, Grid), role setters, resets,
//	  path reconstruction, flood-fill components and an ASCII dump
//	• bfs, dfs:  unweighted traversals with hooks and neighbor filters
//	• dijkstra:  shortest paths under any non-negative step cost
//	• astar:     A* (Euclidean heuristic by default) and greedy best-first
//	• search:    pick an algorithm by name, get the visited order and the path
//	• maze:      recursive division, Prim and Kruskal with a BFS solvability check
//	• scenario:  YAML boards for the gridpath command
//
// ✨ How a run works
//
//  1. Build a Grid and place the start, the end and walls with the setters.
//  2. Call a search. It validates the endpoints, clears the previous run and
//     works on a private copy of the nodes; only parent links are written
//     back to the grid.
//  3. Replay SearchResult.Order for animation and call Grid.Path(end) for the
//     route.
//
// Quick example:
//
//	g, _ := gridgraph.NewGrid(15, 31)
//	g.SetStart(gridgraph.At(1, 1)).SetEnd(gridgraph.At(13, 29))
//	if _, err := maze.Generate(g, maze.WithSeed(7)); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := search.Run(g, search.AStar, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g)
//	fmt.Println("steps:", len(out.Path)-1)
//
// Everything is synchronous and single-threaded; a Grid must not be mutated
// concurrently.
package gridpath
