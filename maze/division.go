package maze

import "math/rand"

// region is an inclusive rectangle of cells still to be divided.
type region struct {
	r0, r1, c0, c1 int
}

// divide runs recursive division over b: the border is walled, then the
// interior is split by walls with a passage of width gap until every region
// is too small to split.
//
// Each line is open in two places. The first is the passage, a half-open
// interval [p, p+gap) with p drawn from [first, last-gap+1] of the region's
// span. The second is a line end: its end cell stays open whenever the cell
// just outside the region is open, which happens where an earlier line left
// its passage. A line never lies on its region's first or last row (column).
// These rules keep every earlier passage usable, so the open cells stay
// connected.
func divide(b *board, gap int, rng *rand.Rand) {
	outline(b)

	stack := []region{{r0: 1, r1: b.rows - 2, c0: 1, c1: b.cols - 2}}
	for len(stack) > 0 {
		reg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		horizontal, ok := orient(reg, gap, rng)
		if !ok {
			continue
		}
		if horizontal {
			row := splitAt(reg.r0, reg.r1, gap, rng)
			p := reg.c0 + rng.Intn(reg.c1-reg.c0+2-gap)
			for c := reg.c0; c <= reg.c1; c++ {
				if c >= p && c < p+gap {
					continue
				}
				if (c == reg.c0 && b.open(row, c-1)) || (c == reg.c1 && b.open(row, c+1)) {
					continue
				}
				b.put(row, c)
			}
			stack = append(stack,
				region{r0: reg.r0, r1: row - 1, c0: reg.c0, c1: reg.c1},
				region{r0: row + 1, r1: reg.r1, c0: reg.c0, c1: reg.c1},
			)
			continue
		}

		col := splitAt(reg.c0, reg.c1, gap, rng)
		p := reg.r0 + rng.Intn(reg.r1-reg.r0+2-gap)
		for r := reg.r0; r <= reg.r1; r++ {
			if r >= p && r < p+gap {
				continue
			}
			if (r == reg.r0 && b.open(r-1, col)) || (r == reg.r1 && b.open(r+1, col)) {
				continue
			}
			b.put(r, col)
		}
		stack = append(stack,
			region{r0: reg.r0, r1: reg.r1, c0: reg.c0, c1: col - 1},
			region{r0: reg.r0, r1: reg.r1, c0: col + 1, c1: reg.c1},
		)
	}
}

// outline walls the border. An endpoint sitting in a corner keeps both of its
// border neighbors open, its only way into the interior.
func outline(b *board) {
	keep := map[int]bool{}
	for _, e := range []struct{ r, c int }{{b.start.Row, b.start.Col}, {b.end.Row, b.end.Col}} {
		if (e.r == 0 || e.r == b.rows-1) && (e.c == 0 || e.c == b.cols-1) {
			keep[e.r*b.cols+clamp(e.c, 1, b.cols-2)] = true
			keep[clamp(e.r, 1, b.rows-2)*b.cols+e.c] = true
		}
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if r != 0 && r != b.rows-1 && c != 0 && c != b.cols-1 {
				continue
			}
			if !keep[r*b.cols+c] {
				b.put(r, c)
			}
		}
	}
}

// orient picks the split direction for reg, reporting false when reg cannot
// be split. Taller regions split horizontally, wider ones vertically, squares
// by coin flip.
func orient(reg region, gap int, rng *rand.Rand) (horizontal, ok bool) {
	rows := reg.r1 - reg.r0 + 1
	cols := reg.c1 - reg.c0 + 1
	canH := rows >= 3 && cols > gap
	canV := cols >= 3 && rows > gap

	var preferH bool
	switch {
	case rows > cols:
		preferH = true
	case cols > rows:
		preferH = false
	default:
		preferH = rng.Intn(2) == 0
	}

	switch {
	case preferH && canH:
		return true, true
	case !preferH && canV:
		return false, true
	case canH:
		return true, true
	case canV:
		return false, true
	}
	return false, false
}

// splitAt draws a line index in [lo+m, hi-m] with m = min(gap, (n-1)/2).
// Callers guarantee hi-lo >= 2, so m >= 1.
func splitAt(lo, hi, gap int, rng *rand.Rand) int {
	m := min(gap, (hi-lo)/2)
	return lo + m + rng.Intn(hi-lo-2*m+1)
}

func clamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}
