package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// lattice is a board prepared for spanning-tree carving: every cell is a wall
// except the rooms, the cells with an odd row and an odd column away from
// the border. Two rooms two cells apart are joined by digging the cell
// between them.
type lattice struct {
	b            *board
	lastR, lastC int // last room row and column
	perRow       int // rooms per lattice row
}

// passage joins two rooms two cells apart.
type passage struct {
	from, to gridgraph.Coord
}

func newLattice(b *board) *lattice {
	for i := range b.wall {
		b.wall[i] = true
	}
	l := &lattice{b: b, lastR: lastOdd(b.rows), lastC: lastOdd(b.cols)}
	l.perRow = (l.lastC + 1) / 2
	for r := 1; r <= l.lastR; r += 2 {
		for c := 1; c <= l.lastC; c += 2 {
			b.dig(r, c)
		}
	}
	return l
}

// rooms returns the number of rooms.
func (l *lattice) rooms() int { return ((l.lastR + 1) / 2) * l.perRow }

// id numbers the room at c in row-major order.
func (l *lattice) id(c gridgraph.Coord) int { return (c.Row/2)*l.perRow + c.Col/2 }

// room returns the room with the given id.
func (l *lattice) room(id int) gridgraph.Coord {
	return gridgraph.At(2*(id/l.perRow)+1, 2*(id%l.perRow)+1)
}

// join digs the cell between the two rooms of p.
func (l *lattice) join(p passage) {
	l.b.dig((p.from.Row+p.to.Row)/2, (p.from.Col+p.to.Col)/2)
}

// around lists the passages from room c to its lattice neighbors, in
// up, right, down, left order.
func (l *lattice) around(c gridgraph.Coord) []passage {
	out := make([]passage, 0, 4)
	for _, d := range [4]gridgraph.Coord{{Row: -2}, {Col: 2}, {Row: 2}, {Col: -2}} {
		n := gridgraph.At(c.Row+d.Row, c.Col+d.Col)
		if n.Row >= 1 && n.Row <= l.lastR && n.Col >= 1 && n.Col <= l.lastC {
			out = append(out, passage{from: c, to: n})
		}
	}
	return out
}

// link opens e and a straight corridor from it to the nearest room, first
// along its column and then along the room's row.
func (l *lattice) link(e gridgraph.Coord) {
	tr, tc := nearestOdd(e.Row, l.lastR), nearestOdd(e.Col, l.lastC)
	r, c := e.Row, e.Col
	l.b.dig(r, c)
	for r != tr {
		r += sign(tr - r)
		l.b.dig(r, c)
	}
	for c != tc {
		c += sign(tc - c)
		l.b.dig(r, c)
	}
}

// carvePrim grows a spanning tree from a random room, repeatedly opening a
// random frontier passage that leads to a room outside the tree.
func carvePrim(b *board, rng *rand.Rand) {
	l := newLattice(b)
	in := make([]bool, l.rooms())

	root := l.room(rng.Intn(l.rooms()))
	in[l.id(root)] = true
	frontier := l.around(root)
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		p := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if in[l.id(p.to)] {
			continue
		}
		in[l.id(p.to)] = true
		l.join(p)
		for _, next := range l.around(p.to) {
			if !in[l.id(next.to)] {
				frontier = append(frontier, next)
			}
		}
	}

	l.link(b.start)
	l.link(b.end)
}

// carveKruskal shuffles every passage of the lattice and opens those that
// join two rooms not yet connected.
func carveKruskal(b *board, rng *rand.Rand) {
	l := newLattice(b)

	var all []passage
	for id := 0; id < l.rooms(); id++ {
		c := l.room(id)
		for _, p := range l.around(c) {
			// right and down only, so each passage is listed once
			if p.to.Row > c.Row || p.to.Col > c.Col {
				all = append(all, p)
			}
		}
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	sets := newDisjointSet(l.rooms())
	for _, p := range all {
		if sets.union(l.id(p.from), l.id(p.to)) {
			l.join(p)
		}
	}

	l.link(b.start)
	l.link(b.end)
}

// lastOdd is the largest odd index that is not on the border of a side of
// length n (n >= 3).
func lastOdd(n int) int {
	x := n - 2
	if x%2 == 0 {
		x--
	}
	return x
}

// nearestOdd maps x to the closest room index in [1, last].
func nearestOdd(x, last int) int {
	switch {
	case x < 1:
		return 1
	case x > last:
		return last
	case x%2 == 1:
		return x
	default:
		return x - 1
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
