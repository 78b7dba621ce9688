package lattice

import (
	"fmt"

	"github.com/katalvlaran/gridroute/csr"
)

// ToUndirectedCSR converts the current snapshot into an undirected csr.Graph.
// Every cell gets a node (absent cells simply have no edges); each adjacent
// present pair is stored once, lower index first; node values are 0..Size()-1.
// The graph does not follow later edits of the lattice.
// Complexity: O(V×d + E log E), Memory: O(Columns×Rows + E).
func (l *Lattice2D) ToUndirectedCSR() *csr.Graph {
	return l.buildCSR(l.edgeList(false), csr.WithNodeValues(l.nodeValues()))
}

// ToDirectedCSR converts the current snapshot into a directed csr.Graph with
// both directions of every adjacent present pair. Node values are
// 0..Size()-1 as for ToUndirectedCSR.
func (l *Lattice2D) ToDirectedCSR() *csr.Graph {
	return l.buildCSR(l.edgeList(true), csr.WithDirected(), csr.WithNodeValues(l.nodeValues()))
}

// nodeValues is the identity payload: node i carries its row-major index.
func (l *Lattice2D) nodeValues() []int {
	values := make([]int, l.Size())
	for i := range values {
		values[i] = i
	}

	return values
}

// edgeList enumerates adjacent present pairs. Without both, only u < v pairs
// are emitted so an undirected pair appears once.
func (l *Lattice2D) edgeList(both bool) []csr.Edge {
	var edges []csr.Edge
	for _, v := range l.Vertices() {
		u := l.ToVertexIndex(v.Col, v.Row)
		for _, n := range l.Neighbours(v) {
			w := l.ToVertexIndex(n.Col, n.Row)
			if both || u < w {
				edges = append(edges, csr.Edge{From: u, To: w})
			}
		}
	}

	return edges
}

func (l *Lattice2D) buildCSR(edges []csr.Edge, opts ...csr.Option) *csr.Graph {
	g, err := csr.Build(l.Size(), edges, opts...)
	if err != nil {
		// Edges come from in-bounds neighbours, so Build cannot reject them.
		panic(fmt.Sprintf("lattice: csr conversion: %v", err))
	}

	return g
}
