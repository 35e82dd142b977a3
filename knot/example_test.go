package knot_test

import (
	"fmt"

	"github.com/katalvlaran/knotgrid/knot"
)

// ExampleSum hashes a short key with the full 64-round knot hash.
func ExampleSum() {
	d, err := knot.Sum("AoC 2017")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Hex())
	// Output:
	// 33efeb34ea91902bb2f59c9920caa6cd
}

// ExampleRing_Round runs a single round of literal lengths on a 5-element
// ring and prints the product of the first two elements.
func ExampleRing_Round() {
	r, _ := knot.NewRing(5)
	_ = r.Round([]int{3, 4, 1, 5})
	fmt.Println(r.Values(), r.Check())
	// Output:
	// [3 4 2 1 0] 12
}

// ExampleDigest_Binary prints the first byte of a disk row as bits.
func ExampleDigest_Binary() {
	d, _ := knot.Sum("flqrgnkx-0")
	fmt.Println(d.Binary()[:8])
	// Output:
	// 11010100
}
