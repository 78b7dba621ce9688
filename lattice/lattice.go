package lattice

import "sort"

// EnableDiagonal switches to octilinear adjacency.
func (l *Lattice2D) EnableDiagonal() { l.diagonal = true }

// DisableDiagonal switches to rectilinear adjacency.
func (l *Lattice2D) DisableDiagonal() { l.diagonal = false }

// Diagonal reports whether octilinear adjacency is active.
func (l *Lattice2D) Diagonal() bool { return l.diagonal }

// Invert swaps present and absent vertices in O(1) by toggling the dense flag.
func (l *Lattice2D) Invert() { l.dense = !l.dense }

// Columns returns the grid width.
func (l *Lattice2D) Columns() int { return l.columns }

// Rows returns the grid height.
func (l *Lattice2D) Rows() int { return l.rows }

// Size returns Columns×Rows.
func (l *Lattice2D) Size() int { return l.columns * l.rows }

// Dense reports whether the stored set currently lists absent vertices.
func (l *Lattice2D) Dense() bool { return l.dense }

// ExclusionsLen returns the size of the stored coordinate set.
// After any edit it is at most Size()/2.
func (l *Lattice2D) ExclusionsLen() int { return len(l.exclusions) }

// Len returns the number of present vertices.
func (l *Lattice2D) Len() int {
	if l.dense {
		return l.Size() - len(l.exclusions)
	}
	return len(l.exclusions)
}

// IsEmpty reports whether no vertex is present.
func (l *Lattice2D) IsEmpty() bool { return l.Len() == 0 }

// IsFull reports whether every vertex is present.
func (l *Lattice2D) IsFull() bool { return l.Len() == l.Size() }

// IsInside reports whether v lies within the grid bounds.
// Complexity: O(1).
func (l *Lattice2D) IsInside(v Vertex) bool {
	return v.Col >= 0 && v.Col < l.columns && v.Row >= 0 && v.Row < l.rows
}

// HasVertex reports whether v is present. Always false outside the bounds.
// Complexity: O(1).
func (l *Lattice2D) HasVertex(v Vertex) bool {
	return l.IsInside(v) && l.present(v)
}

// present applies the dense/sparse predicate without a bounds check.
func (l *Lattice2D) present(v Vertex) bool {
	_, stored := l.exclusions[v]
	return stored != l.dense
}

// HasEdge reports whether v1 and v2 are both present and grid-adjacent under
// the active connectivity. Symmetric in its arguments.
func (l *Lattice2D) HasEdge(v1, v2 Vertex) bool {
	if !l.HasVertex(v1) || !l.HasVertex(v2) {
		return false
	}
	dc := absInt(v1.Col - v2.Col)
	dr := absInt(v1.Row - v2.Row)

	return dc+dr == 1 || (l.diagonal && dc == 1 && dr == 1)
}

// Neighbours returns the present in-bounds neighbours of v, or nil if v is
// absent. Order: left, (diag) top-left, (diag) bottom-left, right,
// (diag) top-right, (diag) bottom-right, top, bottom.
// Complexity: O(1).
func (l *Lattice2D) Neighbours(v Vertex) []Vertex {
	if !l.HasVertex(v) {
		return nil
	}
	x, y := v.Col, v.Row
	candidates := make([]Vertex, 0, 8)
	if x > 0 {
		candidates = append(candidates, Vertex{x - 1, y})
		if l.diagonal {
			if y > 0 {
				candidates = append(candidates, Vertex{x - 1, y - 1})
			}
			if y+1 < l.rows {
				candidates = append(candidates, Vertex{x - 1, y + 1})
			}
		}
	}
	if x+1 < l.columns {
		candidates = append(candidates, Vertex{x + 1, y})
		if l.diagonal {
			if y > 0 {
				candidates = append(candidates, Vertex{x + 1, y - 1})
			}
			if y+1 < l.rows {
				candidates = append(candidates, Vertex{x + 1, y + 1})
			}
		}
	}
	if y > 0 {
		candidates = append(candidates, Vertex{x, y - 1})
	}
	if y+1 < l.rows {
		candidates = append(candidates, Vertex{x, y + 1})
	}

	out := candidates[:0]
	for _, c := range candidates {
		if l.present(c) {
			out = append(out, c)
		}
	}

	return out
}

// ToVertexIndex maps (col,row) to its row-major index col + row×Columns.
// Complexity: O(1).
func (l *Lattice2D) ToVertexIndex(col, row int) int {
	return col + row*l.columns
}

// ToVertexCoords maps a row-major index back to (col,row).
// It is the inverse of ToVertexIndex for 0 ≤ index < Size().
// A lattice without columns maps every index to the zero Vertex.
// Complexity: O(1).
func (l *Lattice2D) ToVertexCoords(index int) Vertex {
	if l.columns == 0 {
		return Vertex{}
	}
	return Vertex{Col: index % l.columns, Row: index / l.columns}
}

// Area lists the cells of the inclusive rectangle [from,to] in row-major order.
// Returns nil when from is not the top-left corner of to.
func (l *Lattice2D) Area(from, to Vertex) []Vertex {
	if from.Col > to.Col || from.Row > to.Row {
		return nil
	}
	out := make([]Vertex, 0, (to.Col-from.Col+1)*(to.Row-from.Row+1))
	for row := from.Row; row <= to.Row; row++ {
		for col := from.Col; col <= to.Col; col++ {
			out = append(out, Vertex{col, row})
		}
	}

	return out
}

// Perimeter lists the boundary cells of the inclusive rectangle [from,to]:
// the top row, the bottom row, then the left and right columns strictly
// between them. Each cell appears once, also for one-cell-wide rectangles.
func (l *Lattice2D) Perimeter(from, to Vertex) []Vertex {
	if from.Col > to.Col || from.Row > to.Row {
		return nil
	}
	out := make([]Vertex, 0, 2*(to.Col-from.Col+1)+2*(to.Row-from.Row))
	for col := from.Col; col <= to.Col; col++ {
		out = append(out, Vertex{col, from.Row})
	}
	if to.Row != from.Row {
		for col := from.Col; col <= to.Col; col++ {
			out = append(out, Vertex{col, to.Row})
		}
	}
	for row := from.Row + 1; row < to.Row; row++ {
		out = append(out, Vertex{from.Col, row})
		if to.Col != from.Col {
			out = append(out, Vertex{to.Col, row})
		}
	}

	return out
}

// IsAreaObstructed reports whether any vertex of [from,to] is present.
func (l *Lattice2D) IsAreaObstructed(from, to Vertex) bool {
	for _, v := range l.Area(from, to) {
		if l.HasVertex(v) {
			return true
		}
	}
	return false
}

// Vertices returns the present vertices in canonical (row-major) order.
// Complexity: O(min(present, absent) log) when sparse, O(Columns×Rows) when dense.
func (l *Lattice2D) Vertices() []Vertex {
	out := make([]Vertex, 0, l.Len())
	if !l.dense {
		for v := range l.exclusions {
			out = append(out, v)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Row != out[j].Row {
				return out[i].Row < out[j].Row
			}
			return out[i].Col < out[j].Col
		})
		return out
	}
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.columns; col++ {
			v := Vertex{col, row}
			if _, absent := l.exclusions[v]; !absent {
				out = append(out, v)
			}
		}
	}

	return out
}

// Equal reports whether both lattices have the same set of present vertices.
// Extent, connectivity and the internal representation are not compared.
func (l *Lattice2D) Equal(other *Lattice2D) bool {
	if other == nil {
		return false
	}
	if l.Len() != other.Len() {
		return false
	}
	a, b := l.Vertices(), other.Vertices()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (l *Lattice2D) Clone() *Lattice2D {
	c := &Lattice2D{
		columns:    l.columns,
		rows:       l.rows,
		diagonal:   l.diagonal,
		dense:      l.dense,
		exclusions: make(map[Vertex]struct{}, len(l.exclusions)),
	}
	for v := range l.exclusions {
		c.exclusions[v] = struct{}{}
	}

	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
