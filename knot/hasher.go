package knot

import (
	"fmt"
	"hash"
)

// Hasher adapts the knot hash to hash.Hash. The knot hash is not a
// streaming construction, so Write buffers the key and Sum hashes it in
// full. Sum does not change the buffered state.
//
// The zero Hasher is ready to use and runs Rounds rounds.
type Hasher struct {
	rounds int
	buf    []byte
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a Hasher running the given number of rounds.
// Returns ErrInvalidRounds if rounds <= 0.
func New(rounds int) (*Hasher, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	return &Hasher{rounds: rounds}, nil
}

// Write appends p to the buffered key. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)

	return len(p), nil
}

// Sum appends the digest of the buffered key to b.
func (h *Hasher) Sum(b []byte) []byte {
	rounds := h.rounds
	if rounds <= 0 {
		rounds = Rounds
	}
	d := tie(byteLengths(h.buf), rounds)

	return append(b, d[:]...)
}

// Reset clears the buffered key.
func (h *Hasher) Reset() { h.buf = h.buf[:0] }

// Size returns DigestSize.
func (h *Hasher) Size() int { return DigestSize }

// BlockSize returns the fold block size.
func (h *Hasher) BlockSize() int { return blockSize }
