package disk

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knotgrid/gridgraph"
	"github.com/katalvlaran/knotgrid/knot"
)

// RowKey returns the hash input for row i: "{key}-{i}".
func RowKey(key string, row int) string {
	return key + "-" + strconv.Itoa(row)
}

// BuildGrid hashes the Rows row keys of key and returns the disk bitmap.
// Rows are hashed concurrently, at most Workers at a time.
//
// A hash failure is returned as *RowError wrapping the knot sentinel.
// If ctx is cancelled, no further rows are started and ctx.Err() is returned.
func BuildGrid(ctx context.Context, key string, opts ...Option) (Grid, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	grid := make(Grid, Rows)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for row := 0; row < Rows; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := knot.Hash(RowKey(key, row), knot.Rounds)
			if err != nil {
				return &RowError{Row: row, Err: err}
			}
			bits := d.Bits()
			grid[row] = bits[:]
			o.OnRow(row, d)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return grid, nil
}

// Graph wraps grid in a 4-connected gridgraph.GridGraph; every analysis in
// this package goes through it.
// Returns gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular for
// malformed grids.
func Graph(grid Grid) (*gridgraph.GridGraph, error) {
	return gridgraph.From2D(grid, gridgraph.Conn4)
}

// CountRegions returns the number of 4-connected regions of used squares.
func CountRegions(grid Grid) (int, error) {
	gg, err := Graph(grid)
	if err != nil {
		return 0, err
	}

	return gg.CountRegions()
}

// Used returns the number of used squares.
func Used(grid Grid) (int, error) {
	gg, err := Graph(grid)
	if err != nil {
		return 0, err
	}

	return gg.Used(), nil
}

// Render draws grid as rows of '#' (used) and '.' (free) joined by newlines.
func Render(grid Grid) (string, error) {
	gg, err := Graph(grid)
	if err != nil {
		return "", err
	}

	return gg.String(), nil
}

// Regions lists every region as its squares, regions in row-major order
// of their first square. Region indices are the ones Bridge accepts.
func Regions(grid Grid) ([][]Square, error) {
	gg, err := Graph(grid)
	if err != nil {
		return nil, err
	}
	comps := gg.ConnectedComponents()
	out := make([][]Square, len(comps))
	for i, comp := range comps {
		out[i] = squares(gg, comp)
	}

	return out, nil
}

// Bridge returns the cheapest chain of squares joining region src to region
// dst (indices as in Regions) and the number of free squares on it.
// Returns gridgraph.ErrComponentIndex for unknown regions.
func Bridge(grid Grid, src, dst int) ([]Square, int, error) {
	gg, err := Graph(grid)
	if err != nil {
		return nil, 0, err
	}
	path, cost, err := gg.ExpandIsland(src, dst)
	if err != nil {
		return nil, 0, fmt.Errorf("disk: bridge %d→%d: %w", src, dst, err)
	}

	return squares(gg, path), cost, nil
}

func squares(gg *gridgraph.GridGraph, cells []int) []Square {
	out := make([]Square, len(cells))
	for i, idx := range cells {
		x, y := gg.Coordinate(idx)
		out[i] = Square{Row: y, Col: x}
	}

	return out
}

// Analyze builds the disk for key and reports its used squares and regions.
func Analyze(ctx context.Context, key string, opts ...Option) (Report, error) {
	grid, err := BuildGrid(ctx, key, opts...)
	if err != nil {
		return Report{}, err
	}
	gg, err := Graph(grid)
	if err != nil {
		return Report{}, err
	}
	regions, err := gg.CountRegions()
	if err != nil {
		return Report{}, err
	}

	return Report{Key: key, Used: gg.Used(), Regions: regions}, nil
}
