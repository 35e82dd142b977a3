package disk

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/knotgrid/knot"
)

const (
	// Rows is the number of disk rows, one knot hash each.
	Rows = 128
	// Cols is the number of squares per row: the bit length of a digest.
	Cols = knot.BitLen
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("disk: invalid option supplied")

// Grid is a disk bitmap indexed [row][col]; true marks a used square.
type Grid [][]bool

// RowError tags a hash failure with the row whose key produced it.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("disk: row %d: %v", e.Row, e.Err)
}

// Unwrap returns the underlying knot error.
func (e *RowError) Unwrap() error { return e.Err }

// Option configures BuildGrid.
type Option func(*Options)

// Options holds BuildGrid parameters.
type Options struct {
	// Workers bounds the number of rows hashed concurrently.
	Workers int

	// OnRow, if set, is called after each row is hashed. It may be called
	// from several goroutines at once.
	OnRow func(row int, d knot.Digest)

	err error
}

// DefaultOptions returns Workers = GOMAXPROCS and no row callback.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		OnRow:   func(int, knot.Digest) {},
	}
}

// WithWorkers sets the worker count; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnRow registers a per-row callback.
func WithOnRow(fn func(row int, d knot.Digest)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}

// Square addresses one disk square.
type Square struct {
	Row, Col int
}

// Report summarises a disk.
type Report struct {
	Key     string
	Used    int
	Regions int
}
