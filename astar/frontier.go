package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// item is one frontier entry. Stale entries are skipped on pop.
type item struct {
	c    gridgraph.Coord
	prio float64 // f for A*, h for Greedy
	seq  int
}

// frontier is a min-heap by (prio, seq).
type frontier struct {
	items []*item
	seq   int
}

func newFrontier(capacity int) *frontier {
	return &frontier{items: make([]*item, 0, capacity)}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].prio != f.items[j].prio {
		return f.items[i].prio < f.items[j].prio
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(*item)) }

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return it
}

func (f *frontier) push(c gridgraph.Coord, prio float64) {
	heap.Push(f, &item{c: c, prio: prio, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *item { return heap.Pop(f).(*item) }
