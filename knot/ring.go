package knot

import "fmt"

// Ring is the circular buffer scrambled by knot rounds. It starts as the
// identity permutation and keeps its cursor and skip size across rounds.
// A Ring is not safe for concurrent use; Hash allocates a fresh one per call.
type Ring struct {
	values []byte
	// cursor and skip may wrap; 2^32 is a multiple of Size, so cursor%Size
	// stays exact for full-size rings.
	cursor uint32
	skip   uint32
}

// NewRing returns an identity ring of the given size.
// Returns ErrInvalidSize unless 1 <= size <= Size.
func NewRing(size int) (*Ring, error) {
	if size < 1 || size > Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return newRing(size), nil
}

func newRing(size int) *Ring {
	r := &Ring{values: make([]byte, size)}
	for i := range r.values {
		r.values[i] = byte(i)
	}

	return r
}

// Len returns the number of elements in the ring.
func (r *Ring) Len() int { return len(r.values) }

// Cursor returns the unreduced position of the next reversal.
func (r *Ring) Cursor() uint32 { return r.cursor }

// Skip returns the current skip size.
func (r *Ring) Skip() uint32 { return r.skip }

// Values returns a copy of the ring contents, starting at index 0.
func (r *Ring) Values() []byte {
	out := make([]byte, len(r.values))
	copy(out, r.values)

	return out
}

// Round runs one pass over lengths. All lengths are validated first, so a
// rejected round leaves the ring untouched.
// Returns ErrInvalidLength if any length is negative or exceeds r.Len().
func (r *Ring) Round(lengths []int) error {
	if err := r.validate(lengths); err != nil {
		return err
	}
	r.round(lengths)

	return nil
}

// Rounds runs n rounds over lengths. n == 0 is a no-op.
func (r *Ring) Rounds(lengths []int, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, n)
	}
	if err := r.validate(lengths); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		r.round(lengths)
	}

	return nil
}

func (r *Ring) validate(lengths []int) error {
	for i, l := range lengths {
		if l < 0 || l > len(r.values) {
			return fmt.Errorf("%w: lengths[%d]=%d, ring size %d", ErrInvalidLength, i, l, len(r.values))
		}
	}

	return nil
}

func (r *Ring) round(lengths []int) {
	for _, l := range lengths {
		r.reverse(r.cursor, uint32(l))
		r.cursor += uint32(l) + r.skip
		r.skip++
	}
}

// reverse flips the n elements starting at start, wrapping past the end.
// n <= 1 leaves the ring unchanged.
func (r *Ring) reverse(start, n uint32) {
	if n < 2 {
		return
	}
	size := uint32(len(r.values))
	i, j := start%size, (start+n-1)%size
	for k := uint32(0); k < n/2; k++ {
		r.values[i], r.values[j] = r.values[j], r.values[i]
		i = (i + 1) % size
		j = (j + size - 1) % size
	}
}

// Check returns the product of the first two elements, or 0 for a ring
// shorter than two.
func (r *Ring) Check() int {
	if len(r.values) < 2 {
		return 0
	}

	return int(r.values[0]) * int(r.values[1])
}

// Dense folds the ring into a Digest: byte b is the XOR of elements
// [16b, 16b+16). Only a full-size ring can be folded.
func (r *Ring) Dense() (Digest, error) {
	if len(r.values) != Size {
		return Digest{}, fmt.Errorf("%w: dense fold needs %d elements, have %d", ErrInvalidSize, Size, len(r.values))
	}

	return r.dense(), nil
}

func (r *Ring) dense() Digest {
	var d Digest
	for b := 0; b < DigestSize; b++ {
		var x byte
		for _, v := range r.values[b*blockSize : (b+1)*blockSize] {
			x ^= v
		}
		d[b] = x
	}

	return d
}
