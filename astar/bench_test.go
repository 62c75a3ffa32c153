package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkSearch_Open measures A* across an open 200×200 board.
func BenchmarkSearch_Open(b *testing.B) {
	g := board(b, 200, 200, gridgraph.At(0, 0), gridgraph.At(199, 199))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkGreedy_Open is the greedy counterpart of BenchmarkSearch_Open.
func BenchmarkGreedy_Open(b *testing.B) {
	g := board(b, 200, 200, gridgraph.At(0, 0), gridgraph.At(199, 199))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Greedy(g); err != nil {
			b.Fatalf("Greedy failed: %v", err)
		}
	}
}
