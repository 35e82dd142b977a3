// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/knotgrid.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCell indicates a row string contains a character other than '#' or '.'.
	ErrInvalidCell = errors.New("gridgraph: cell must be '#' or '.'")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ScanOrder selects the order in which CountRegions looks for unvisited seeds.
type ScanOrder int

const (
	// RowMajor scans y then x.
	RowMajor ScanOrder = iota
	// ColumnMajor scans x then y.
	ColumnMajor
)

// Traversal selects the flood-fill worklist discipline.
type Traversal int

const (
	// BreadthFirst fills from a FIFO queue.
	BreadthFirst Traversal = iota
	// DepthFirst fills from a LIFO stack.
	DepthFirst
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Option configures CountRegions via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*CountOptions)

// CountOptions holds the scan and traversal strategy of CountRegions.
type CountOptions struct {
	Scan      ScanOrder
	Traversal Traversal

	// OnRegion, if set, is called with the seed cell index of each new region.
	OnRegion func(seed int)

	err error
}

// DefaultCountOptions returns RowMajor scanning with BreadthFirst fills.
func DefaultCountOptions() CountOptions {
	return CountOptions{
		Scan:      RowMajor,
		Traversal: BreadthFirst,
		OnRegion:  func(int) {},
	}
}

// WithScanOrder sets the seed scan order.
func WithScanOrder(s ScanOrder) Option {
	return func(o *CountOptions) {
		switch s {
		case RowMajor, ColumnMajor:
			o.Scan = s
		default:
			o.err = fmt.Errorf("%w: unknown scan order %d", ErrOptionViolation, s)
		}
	}
}

// WithTraversal sets the flood-fill discipline.
func WithTraversal(tr Traversal) Option {
	return func(o *CountOptions) {
		switch tr {
		case BreadthFirst, DepthFirst:
			o.Traversal = tr
		default:
			o.err = fmt.Errorf("%w: unknown traversal %d", ErrOptionViolation, tr)
		}
	}
}

// WithOnRegion registers a callback run once per region, before its fill.
func WithOnRegion(fn func(seed int)) Option {
	return func(o *CountOptions) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}

// GridGraph treats a 2D boolean grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the original input value.
// offsets is precomputed from Conn for adjacency lookups.
type GridGraph struct {
	Width, Height int
	Cells         [][]bool
	Conn          Connectivity
	offsets       [][2]int
}
