package knot

import "errors"

// Sentinel errors for knot hash computation.
var (
	// ErrInvalidRounds is returned when the round count is not positive.
	ErrInvalidRounds = errors.New("knot: rounds must be positive")

	// ErrInvalidLength is returned when a length cannot be reversed on the ring.
	ErrInvalidLength = errors.New("knot: length exceeds ring size")

	// ErrInvalidKeyEncoding is returned when a key character is not a byte code.
	ErrInvalidKeyEncoding = errors.New("knot: key character outside [0,255]")

	// ErrInvalidSize is returned by NewRing for sizes outside 1..Size.
	ErrInvalidSize = errors.New("knot: ring size out of range")

	// ErrInvalidDigest is returned by ParseHex for malformed input.
	ErrInvalidDigest = errors.New("knot: malformed hex digest")
)

const (
	// Size is the ring length used by every hash computation.
	Size = 256

	// Rounds is the number of rounds of the full knot hash.
	Rounds = 64

	// DigestSize is the number of bytes in a Digest.
	DigestSize = 16

	// blockSize is the number of ring elements folded into one digest byte.
	blockSize = Size / DigestSize
)

// suffix is appended to every key-derived length sequence.
var suffix = [...]int{17, 31, 73, 47, 23}

// Digest is the XOR-folded ring: 16 bytes, rendered as 32 hex
// characters or 128 bits.
type Digest [DigestSize]byte
