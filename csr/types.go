package csr

import "errors"

// Sentinel errors for CSR construction.
var (
	// ErrNegativeNodeCount indicates Build was called with nodeCount < 0.
	ErrNegativeNodeCount = errors.New("csr: node count must be non-negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, nodeCount).
	ErrNodeOutOfRange = errors.New("csr: edge endpoint out of range")

	// ErrWeightsLength indicates the weight slice does not match the edge slice.
	ErrWeightsLength = errors.New("csr: weights length must equal edges length")

	// ErrNodeValuesLength indicates the node value slice does not match nodeCount.
	ErrNodeValuesLength = errors.New("csr: node values length must equal node count")
)

// Edge is a pair of node indices. For undirected graphs the orientation
// of From/To is irrelevant; Edges() always reports From < To.
type Edge struct {
	From, To int
}

// Options configures Build.
type Options struct {
	Directed   bool    // keep edges one-way
	NodeValues []int   // optional per-node payload
	Weights    []int64 // optional per-edge weight, parallel to the input edges
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithDirected builds a directed graph: an edge u→v is only visible from u.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}

// WithNodeValues attaches one value per node. The slice is copied.
func WithNodeValues(values []int) Option {
	return func(o *Options) {
		o.NodeValues = values
	}
}

// WithWeights attaches one weight per input edge. The slice is copied.
// When duplicate edges are collapsed, the first occurrence's weight wins.
func WithWeights(weights []int64) Option {
	return func(o *Options) {
		o.Weights = weights
	}
}

// DefaultOptions returns an undirected, unweighted configuration without node values.
func DefaultOptions() Options {
	return Options{}
}

// Graph is an immutable CSR adjacency graph.
//
// offsets has NodeCount()+1 entries; the neighbours of u live in
// targets[offsets[u]:offsets[u+1]], sorted ascending, with weights
// (if any) in the same positions of weights.
type Graph struct {
	directed  bool
	nodeCount int

	offsets []int
	targets []int
	weights []int64 // nil when unweighted

	values []int // nil when no node values were supplied

	edges       []Edge  // canonical edge list, sorted by (From, To)
	edgeWeights []int64 // parallel to edges; nil when unweighted
}
