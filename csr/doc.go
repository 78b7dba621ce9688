// Package csr provides an immutable compressed-sparse-row (CSR) adjacency
// graph for read-heavy graph algorithms.
//
// What:
//
//   - Graph stores a node count, a per-node offset table and a flat target
//     array whose per-node segments are sorted ascending.
//   - Undirected graphs keep each {u,v} pair once in Edges() and expose it
//     from both endpoints via Neighbors().
//   - Optional per-node values and per-edge weights travel with the layout.
//
// Why:
//
//   - Grid routing converts a mutable lattice snapshot into a frozen graph
//     once, then runs many neighbour scans against it.
//   - A frozen layout is safe to share between concurrent searches.
//
// Complexity:
//
//   - Build:     O(E log E + V), Memory: O(V + E).
//   - Neighbors: O(1) (returns a view into the target array).
//   - HasEdge:   O(log d), d = degree of the source node.
//
// Options:
//
//   - WithDirected():      keep edges one-way.
//   - WithNodeValues(vs):  attach one int payload per node.
//   - WithWeights(ws):     attach one int64 weight per input edge.
//
// Errors:
//
//   - ErrNegativeNodeCount: node count below zero.
//   - ErrNodeOutOfRange:    an edge endpoint is not in [0, nodeCount).
//   - ErrWeightsLength:     len(weights) != len(edges).
//   - ErrNodeValuesLength:  len(values) != nodeCount.
package csr
