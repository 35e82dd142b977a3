// Package gridgraph treats a 2D grid of boolean cells as a graph, enabling
// region counting and minimal-cost "island" bridging.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool grid; true cells are "used".
//   - Identifies connected components (regions) of used cells.
//   - Counts regions with a selectable scan order and flood-fill traversal,
//     or with a disjoint-set union over adjacent used cells.
//   - Computes minimal conversions (0-1 BFS) to connect two regions.
//
// Why:
//
//   - Disk maps: count contiguous groups of used squares.
//   - Cross-checking: every counting strategy must agree on the same grid.
//
// Complexity:
//
//   - ConnectedComponents / CountRegions: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - CountRegionsUnionFind:            O(W×H×α(W×H)), Memory: O(W×H).
//   - ExpandIsland:                     O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithScanOrder(RowMajor | ColumnMajor): seed scan order for CountRegions.
//   - WithTraversal(BreadthFirst | DepthFirst): flood-fill worklist discipline.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: FromRows met a character other than '#' or '.'.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrOptionViolation: an unknown scan order or traversal was supplied.
package gridgraph
