package csr

import (
	"fmt"
	"sort"
)

// Build constructs an immutable Graph with nodeCount nodes from edges.
//
// Behavior:
//  1. Validate nodeCount, endpoints and option slice lengths.
//  2. Canonicalize: undirected pairs are stored as From < To; duplicates collapse.
//  3. Sort the canonical edge list by (From, To).
//  4. Lay out the offset/target arrays; each node's segment is sorted ascending.
//
// Complexity: O(E log E + V) time, O(V + E) memory.
func Build(nodeCount int, edges []Edge, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs.
	if nodeCount < 0 {
		return nil, ErrNegativeNodeCount
	}
	if cfg.Weights != nil && len(cfg.Weights) != len(edges) {
		return nil, fmt.Errorf("%w: %d weights for %d edges", ErrWeightsLength, len(cfg.Weights), len(edges))
	}
	if cfg.NodeValues != nil && len(cfg.NodeValues) != nodeCount {
		return nil, fmt.Errorf("%w: %d values for %d nodes", ErrNodeValuesLength, len(cfg.NodeValues), nodeCount)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= nodeCount || e.To < 0 || e.To >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, e.From, e.To, nodeCount)
		}
	}

	// 2) Canonicalize and deduplicate.
	weighted := cfg.Weights != nil
	seen := make(map[Edge]struct{}, len(edges))
	canon := make([]weightedEdge, 0, len(edges))
	for i, e := range edges {
		if !cfg.Directed && e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		we := weightedEdge{Edge: e}
		if weighted {
			we.weight = cfg.Weights[i]
		}
		canon = append(canon, we)
	}

	// 3) Sort by (From, To).
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].From != canon[j].From {
			return canon[i].From < canon[j].From
		}
		return canon[i].To < canon[j].To
	})

	g := &Graph{
		directed:  cfg.Directed,
		nodeCount: nodeCount,
		offsets:   make([]int, nodeCount+1),
		edges:     make([]Edge, len(canon)),
	}
	if weighted {
		g.edgeWeights = make([]int64, len(canon))
	}
	if cfg.NodeValues != nil {
		g.values = make([]int, nodeCount)
		copy(g.values, cfg.NodeValues)
	}

	// 4) Degree count, prefix sums, then scatter.
	for i, we := range canon {
		g.edges[i] = we.Edge
		if weighted {
			g.edgeWeights[i] = we.weight
		}
		g.offsets[we.From+1]++
		if !cfg.Directed && we.From != we.To {
			g.offsets[we.To+1]++
		}
	}
	for u := 0; u < nodeCount; u++ {
		g.offsets[u+1] += g.offsets[u]
	}

	total := g.offsets[nodeCount]
	g.targets = make([]int, total)
	if weighted {
		g.weights = make([]int64, total)
	}
	cursor := make([]int, nodeCount)
	copy(cursor, g.offsets[:nodeCount])
	place := func(from, to int, w int64) {
		pos := cursor[from]
		g.targets[pos] = to
		if weighted {
			g.weights[pos] = w
		}
		cursor[from]++
	}
	for _, we := range canon {
		place(we.From, we.To, we.weight)
		if !cfg.Directed && we.From != we.To {
			place(we.To, we.From, we.weight)
		}
	}

	// Per-node segments are sorted so Neighbors() and HasEdge() can rely on order.
	for u := 0; u < nodeCount; u++ {
		lo, hi := g.offsets[u], g.offsets[u+1]
		seg := segment{targets: g.targets[lo:hi]}
		if weighted {
			seg.weights = g.weights[lo:hi]
		}
		sort.Sort(seg)
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of distinct edges. An undirected pair counts once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether the graph was built with WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph carries edge weights.
func (g *Graph) Weighted() bool { return g.weights != nil }

// Degree returns the number of neighbours of u, or 0 if u is out of range.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.nodeCount {
		return 0
	}
	return g.offsets[u+1] - g.offsets[u]
}

// Neighbors returns the sorted neighbours of u. The returned slice is a view
// into the graph's storage and must not be modified.
// Returns nil if u is out of range.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.nodeCount {
		return nil
	}
	return g.targets[g.offsets[u]:g.offsets[u+1]]
}

// NeighborsWithWeights returns the sorted neighbours of u with their weights.
// For unweighted graphs every weight is 1.
func (g *Graph) NeighborsWithWeights(u int) ([]int, []int64) {
	targets := g.Neighbors(u)
	if targets == nil {
		return nil, nil
	}
	if g.weights != nil {
		return targets, g.weights[g.offsets[u]:g.offsets[u+1]]
	}
	ws := make([]int64, len(targets))
	for i := range ws {
		ws[i] = 1
	}
	return targets, ws
}

// HasEdge reports whether v is a neighbour of u.
// Complexity: O(log Degree(u)).
func (g *Graph) HasEdge(u, v int) bool {
	nbrs := g.Neighbors(u)
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v
}

// NodeValue returns the value attached to u and whether one exists.
func (g *Graph) NodeValue(u int) (int, bool) {
	if g.values == nil || u < 0 || u >= g.nodeCount {
		return 0, false
	}
	return g.values[u], true
}

// Edges returns a copy of the canonical edge list sorted by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeWeight returns the weight of the i-th canonical edge (see Edges).
// Unweighted graphs report 1.
func (g *Graph) EdgeWeight(i int) int64 {
	if g.edgeWeights == nil {
		return 1
	}
	return g.edgeWeights[i]
}

// weightedEdge carries an input edge and its weight through canonicalization.
type weightedEdge struct {
	Edge
	weight int64
}

// segment sorts one node's targets and keeps weights aligned.
type segment struct {
	targets []int
	weights []int64
}

func (s segment) Len() int           { return len(s.targets) }
func (s segment) Less(i, j int) bool { return s.targets[i] < s.targets[j] }
func (s segment) Swap(i, j int) {
	s.targets[i], s.targets[j] = s.targets[j], s.targets[i]
	if s.weights != nil {
		s.weights[i], s.weights[j] = s.weights[j], s.weights[i]
	}
}
