// Package knotgrid is a small toolkit around the knot hash: a deterministic
// circular-reversal mixing function, and the 128×128 bitmap ("disk") it
// generates row by row.
//
// Under the hood, everything is organized under three subpackages:
//
//	knot/      — Ring, rounds, the 64-round Hash and Digest hex/binary renderings
//	gridgraph/ — boolean grids as graphs: components, region counting, union-find, bridging
//	disk/      — parallel disk construction from "{key}-{row}" hashes and region counts
//
// The cmd/knothash program exposes both the hash and the disk analysis on
// the command line; examples/ holds a runnable bridging demo.
//
// Quick ASCII example (top-left corner of the "flqrgnkx" disk):
//
//	##.#.#..
//	.#.#.#.#
//	....#.#.
//
//	go get github.com/katalvlaran/knotgrid
package knotgrid
