package gridgraph

// ConnectedComponents finds all contiguous regions of used cells
// (Cells[y][x] == true), according to gg.Conn connectivity.
// Returns a slice of components in row-major seed order; each component is
// a slice of cell-indices (row-major) in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Cells[y][x] {
				continue // free
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, gg.fill(i0, seen, BreadthFirst, nil))
		}
	}

	return comps
}

// CountRegions returns the number of maximal connected regions of used cells.
// The count does not depend on the scan order or traversal chosen through opts;
// both exist so callers can cross-check.
// Returns ErrOptionViolation if an option carries an unknown value.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for the visited flags and the worklist.
func (gg *GridGraph) CountRegions(opts ...Option) (int, error) {
	co := DefaultCountOptions()
	for _, fn := range opts {
		fn(&co)
	}
	if co.err != nil {
		return 0, co.err
	}

	seen := make([]bool, gg.Width*gg.Height)
	work := make([]int, 0, 64)
	regions := 0
	visit := func(x, y int) {
		i0 := gg.index(x, y)
		if !gg.Cells[y][x] || seen[i0] {
			return
		}
		regions++
		co.OnRegion(i0)
		work = gg.fill(i0, seen, co.Traversal, work[:0])
	}

	if co.Scan == ColumnMajor {
		for x := 0; x < gg.Width; x++ {
			for y := 0; y < gg.Height; y++ {
				visit(x, y)
			}
		}
	} else {
		for y := 0; y < gg.Height; y++ {
			for x := 0; x < gg.Width; x++ {
				visit(x, y)
			}
		}
	}

	return regions, nil
}

// fill marks every used cell reachable from seed as seen and returns them in
// visit order, appended to buf. The worklist is a queue for BreadthFirst and
// a stack for DepthFirst; no recursion is involved.
func (gg *GridGraph) fill(seed int, seen []bool, tr Traversal, buf []int) []int {
	seen[seed] = true
	pending := []int{seed}
	for len(pending) > 0 {
		var u int
		if tr == DepthFirst {
			u = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		} else {
			u = pending[0]
			pending = pending[1:]
		}
		buf = append(buf, u)
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !gg.Cells[vy][vx] {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				pending = append(pending, vi)
			}
		}
	}

	return buf
}
