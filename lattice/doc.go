// Package lattice models a rectangular routing grid as a graph whose vertices
// are the grid cells that are currently "present" (routable).
//
// What:
//
//   - Lattice2D tracks presence with a single coordinate set and a dense flag:
//     a sparse lattice stores the present cells, a dense lattice stores the
//     absent ones. Edits rebalance so the stored set is never larger than
//     half the grid.
//   - Rectilinear (4-connected) or octilinear (8-connected) adjacency.
//   - Point, area, perimeter, border and bit-vector edits.
//   - Conversion to an immutable csr.Graph for search algorithms.
//   - An ASCII rendering for logs and tests.
//
// Why:
//
//   - Placement grids are usually almost empty (few placed obstacles) or
//     almost full (few routed tracks); storing the smaller side keeps memory
//     at O(min(present, absent)).
//
// Complexity:
//
//   - HasVertex, AddVertex, RemoveVertex: O(1) amortized.
//   - Area/perimeter edits:               O(cells touched).
//   - Rebalance (when it fires):          O(Columns×Rows).
//   - ToUndirectedCSR / ToDirectedCSR:    O(V×d + E log E), d = 4 or 8.
//
// Coordinates are (column, row), zero-based, with rows growing downwards.
// Linear indices are row-major: index = col + row×Columns.
//
// Edits never fail loudly: out-of-bounds coordinates and mismatched vector
// lengths return false or 0.
package lattice
