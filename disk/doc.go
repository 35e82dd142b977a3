// Package disk builds the 128×128 knot-hash bitmap for a key and counts its
// regions.
//
// Row i of the disk is the 128-bit knot hash of "{key}-{i}", most
// significant bit first; a set bit is a used square. Regions are maximal
// 4-connected groups of used squares.
//
// Rows are independent, so BuildGrid hashes them on a bounded pool of
// goroutines (WithWorkers) and places each result by row index. Every grid
// query goes through one gridgraph.GridGraph (Graph): counting, rendering,
// listing Regions and planning a Bridge between two of them.
//
//	grid, err := disk.BuildGrid(ctx, "flqrgnkx")
//	regions, err := disk.CountRegions(grid) // 1242
package disk
