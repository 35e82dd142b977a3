package knot

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"
)

// BitLen is the number of bits in a Digest.
const BitLen = DigestSize * 8

// Hex renders d as 32 lowercase hex characters, high nibble first.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer; it is the same as Hex.
func (d Digest) String() string { return d.Hex() }

// Binary renders d as 128 '0'/'1' characters, most significant bit of
// each byte first, bytes in order.
func (d Digest) Binary() string {
	var sb strings.Builder
	sb.Grow(BitLen)
	for _, b := range d {
		for shift := 7; shift >= 0; shift-- {
			if b>>uint(shift)&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// Bits returns the same bit order as Binary, as booleans.
func (d Digest) Bits() [BitLen]bool {
	var out [BitLen]bool
	for i, b := range d {
		for k := 0; k < 8; k++ {
			out[i*8+k] = b&(0x80>>uint(k)) != 0
		}
	}

	return out
}

// OnesCount returns the number of set bits in d.
func (d Digest) OnesCount() int {
	n := 0
	for _, b := range d {
		n += bits.OnesCount8(b)
	}

	return n
}

// ParseHex decodes a 32-character hex digest (either case).
// Returns ErrInvalidDigest on wrong length or non-hex input.
func ParseHex(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*DigestSize {
		return d, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidDigest, 2*DigestSize, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}

	return d, nil
}
