// Package gridgraph provides utilities to treat a 2D grid of boolean cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification and counting of connected regions of used cells
//   - Shortest-path expansions between regions
//
// Cells with value true are "used"; false cells are "free".
package gridgraph

import (
	"fmt"
	"strings"
)

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], values[y])
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Cells:   cells,
		Conn:    opts.Conn,
		offsets: offsets,
	}, nil
}

// From2D is NewGridGraph with only the connectivity specified.
func From2D(values [][]bool, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// FromRows parses rows of '#' (used) and '.' (free) characters.
// Returns ErrInvalidCell for any other character, plus the NewGridGraph errors.
func FromRows(rows []string, conn Connectivity) (*GridGraph, error) {
	values := make([][]bool, len(rows))
	for y, row := range rows {
		values[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				values[y][x] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, row[x], x, y)
			}
		}
	}

	return From2D(values, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Used returns the number of true cells.
func (gg *GridGraph) Used() int {
	n := 0
	for _, row := range gg.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}

	return n
}

// String renders the grid as '#'/'.' rows separated by newlines.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y, row := range gg.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
