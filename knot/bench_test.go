package knot_test

import (
	"testing"

	"github.com/katalvlaran/knotgrid/knot"
)

// BenchmarkSum measures one full 64-round hash of a disk-row key.
// Complexity: O(64 × (len(key)+5) × 256)
func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = knot.Sum("flqrgnkx-127")
	}
}

// BenchmarkDigest_Bits measures bit expansion of a digest.
func BenchmarkDigest_Bits(b *testing.B) {
	d, err := knot.Sum("flqrgnkx-0")
	if err != nil {
		b.Fatalf("setup Sum failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Bits()
	}
}
