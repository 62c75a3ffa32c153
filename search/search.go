package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownAlgorithm is returned for names and values outside the enumeration.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm enumerates the available traversals.
type Algorithm int

// Enum values (stable ordering).
const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
	Greedy
)

// Algorithms lists every Algorithm in declaration order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, AStar, Greedy}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts a name to an Algorithm. Matching ignores case and
// accepts a few common spellings ("a*", "a-star", "greedy-bfs").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "greedy", "greedy-bfs", "best-first":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Func is a traversal over a grid with default options.
type Func func(g *gridgraph.Grid) (*gridgraph.SearchResult, error)

// Func returns the traversal for a, or nil for an unknown value.
func (a Algorithm) Func() Func {
	switch a {
	case BFS:
		return func(g *gridgraph.Grid) (*gridgraph.SearchResult, error) { return bfs.Search(g) }
	case DFS:
		return func(g *gridgraph.Grid) (*gridgraph.SearchResult, error) { return dfs.Search(g) }
	case Dijkstra:
		return func(g *gridgraph.Grid) (*gridgraph.SearchResult, error) { return dijkstra.Search(g) }
	case AStar:
		return func(g *gridgraph.Grid) (*gridgraph.SearchResult, error) { return astar.Search(g) }
	case Greedy:
		return func(g *gridgraph.Grid) (*gridgraph.SearchResult, error) { return astar.Greedy(g) }
	default:
		return nil
	}
}

// Outcome is a finished run: what was expanded and the route, if any.
type Outcome struct {
	Algorithm Algorithm
	Order     []gridgraph.Coord
	Found     bool
	// Path runs start→end inclusive; nil when Found is false.
	Path []gridgraph.Coord
}

// Run executes a on g and, when the end was reached, rebuilds the route.
// With mark set the result is also applied to g's search states
// (Order as Visited, then Path as OnPath), ready for an ASCII dump.
func Run(g *gridgraph.Grid, a Algorithm, mark bool) (*Outcome, error) {
	fn := a.Func()
	if fn == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	res, err := fn(g)
	if err != nil {
		return nil, fmt.Errorf("search: %s: %w", a, err)
	}

	out := &Outcome{Algorithm: a, Order: res.Order, Found: res.Found}
	if res.Found {
		end, _ := g.End()
		out.Path = g.Path(end)
	}
	if mark {
		g.MarkVisited(out.Order...).MarkPath(out.Path...)
	}

	return out, nil
}
