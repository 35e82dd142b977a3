package gridgraph

// ExpandIsland finds a minimum-conversion path of free cells (false) that
// connects component srcComp to component dstComp, as numbered by
// ConnectedComponents(). Each free cell on the path costs 1; used cells are free
// to cross, even those of third regions.
// Returns the path as row-major cell indices, from a srcComp cell to a
// dstComp cell inclusive, and its cost.
//
// srcComp == dstComp yields the component's first cell at cost 0.
// Ties between equally cheap paths go to the source cell that comes first
// in the component, then to the first neighbor in offset order.
//
// Returns ErrComponentIndex for indices outside ConnectedComponents().
//
// Complexity: O(W·H·d) time, O(W·H) memory for distances and predecessors.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	if srcComp == dstComp {
		return []int{comps[srcComp][0]}, 0, nil
	}

	n := gg.Width * gg.Height
	isDst := make([]bool, n)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}

	// level holds cells at distance d; next collects cells at d+1.
	level := make([]int, 0, len(comps[srcComp]))
	for _, i := range comps[srcComp] {
		dist[i] = 0
		level = append(level, i)
	}
	var next []int
	for d := 0; len(level) > 0; d++ {
		for qi := 0; qi < len(level); qi++ {
			u := level[qi]
			if dist[u] != d {
				continue // improved after being queued for d
			}
			if isDst[u] {
				return gg.tracePath(prev, u), d, nil
			}
			ux, uy := gg.Coordinate(u)
			for _, o := range gg.offsets {
				vx, vy := ux+o[0], uy+o[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.index(vx, vy)
				nd := d
				if !gg.Cells[vy][vx] {
					nd++
				}
				if dist[v] >= 0 && dist[v] <= nd {
					continue
				}
				dist[v], prev[v] = nd, u
				if nd == d {
					level = append(level, v)
				} else {
					next = append(next, v)
				}
			}
		}
		level, next = next, level[:0]
	}

	return nil, 0, ErrNoPath
}

// tracePath walks prev back from end and returns the path source-first.
func (gg *GridGraph) tracePath(prev []int, end int) []int {
	var path []int
	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
