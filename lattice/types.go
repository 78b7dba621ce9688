package lattice

import "fmt"

// Vertex is a grid coordinate: column Col, row Row.
type Vertex struct {
	Col, Row int
}

// String formats the vertex as "(col,row)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.Col, v.Row)
}

// Option configures a Lattice2D at construction time.
type Option func(l *Lattice2D)

// WithDiagonal enables octilinear (8-connected) adjacency.
func WithDiagonal() Option {
	return func(l *Lattice2D) { l.diagonal = true }
}

// Lattice2D is a columns×rows grid graph with a dual dense/sparse presence set.
//
// A vertex v is present iff it is inside the bounds and
// (v ∈ exclusions) XOR dense. Every presence query and mutation goes through
// that single predicate (see present and mark).
//
// Lattice2D is not safe for concurrent mutation; convert it to a csr.Graph to
// share a frozen snapshot.
type Lattice2D struct {
	columns, rows int

	diagonal bool // octilinear adjacency when true
	dense    bool // exclusions lists absent vertices when true, present ones otherwise

	exclusions map[Vertex]struct{}
}

// New returns an empty columns×rows lattice (no present vertices).
// Negative extents are clamped to zero.
// Complexity: O(1).
func New(columns, rows int, opts ...Option) *Lattice2D {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	l := &Lattice2D{
		columns:    columns,
		rows:       rows,
		exclusions: make(map[Vertex]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}
