package knot_test

import (
	"hash"
	"io"
	"testing"

	"github.com/katalvlaran/knotgrid/knot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHasher_MatchesSum verifies chunked writes produce the Sum digest.
func TestHasher_MatchesSum(t *testing.T) {
	var h hash.Hash
	h, err := knot.New(knot.Rounds)
	require.NoError(t, err)

	_, _ = io.WriteString(h, "AoC")
	_, _ = io.WriteString(h, " 2017")
	want, err := knot.Sum("AoC 2017")
	require.NoError(t, err)

	prefix := []byte{0xde, 0xad}
	got := h.Sum(prefix)
	require.Len(t, got, len(prefix)+knot.DigestSize)
	assert.Equal(t, prefix, got[:2])
	assert.Equal(t, want[:], got[2:])

	// Sum leaves the buffered key in place.
	assert.Equal(t, got[2:], h.Sum(nil))

	h.Reset()
	empty, err := knot.Sum("")
	require.NoError(t, err)
	assert.Equal(t, empty[:], h.Sum(nil))

	assert.Equal(t, knot.DigestSize, h.Size())
	assert.Equal(t, 16, h.BlockSize())
}

// TestNew_InvalidRounds rejects non-positive round counts.
func TestNew_InvalidRounds(t *testing.T) {
	_, err := knot.New(0)
	assert.ErrorIs(t, err, knot.ErrInvalidRounds)
}

// TestHasher_ZeroValue checks that an unconfigured Hasher runs the full
// round count instead of folding an untouched ring.
func TestHasher_ZeroValue(t *testing.T) {
	var h knot.Hasher
	_, _ = h.Write([]byte("flqrgnkx-0"))

	want, err := knot.Sum("flqrgnkx-0")
	require.NoError(t, err)
	assert.Equal(t, want[:], h.Sum(nil))
	assert.NotEqual(t, make([]byte, knot.DigestSize), h.Sum(nil))

	one, err := knot.New(1)
	require.NoError(t, err)
	_, _ = one.Write([]byte("flqrgnkx-0"))
	d1, err := knot.Hash("flqrgnkx-0", 1)
	require.NoError(t, err)
	assert.Equal(t, d1[:], one.Sum(nil))
}
