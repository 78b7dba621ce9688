package lattice

import "github.com/bits-and-blooms/bitset"

// mark records v as present (want=true) or absent (want=false) in the stored
// set and reports whether the stored set changed. In a sparse lattice making
// a vertex present inserts it; in a dense lattice it deletes it.
// The caller is responsible for bounds checks and for calling rebalance.
func (l *Lattice2D) mark(v Vertex, want bool) bool {
	_, stored := l.exclusions[v]
	if want != l.dense {
		if stored {
			return false
		}
		l.exclusions[v] = struct{}{}
		return true
	}
	if !stored {
		return false
	}
	delete(l.exclusions, v)

	return true
}

// markAll applies mark to every vertex and rebalances once at the end.
func (l *Lattice2D) markAll(vs []Vertex, want bool) int {
	count := 0
	for _, v := range vs {
		if l.mark(v, want) {
			count++
		}
	}
	l.rebalance()

	return count
}

// rebalance flips the representation when the stored set exceeds half the
// grid, so it always holds the smaller of present and absent.
// Complexity: O(Columns×Rows) when it fires, O(1) otherwise.
func (l *Lattice2D) rebalance() {
	if len(l.exclusions) <= l.Size()/2 {
		return
	}
	complement := make(map[Vertex]struct{}, l.Size()-len(l.exclusions))
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.columns; col++ {
			v := Vertex{col, row}
			if _, stored := l.exclusions[v]; !stored {
				complement[v] = struct{}{}
			}
		}
	}
	l.exclusions = complement
	l.dense = !l.dense
}

// AddVertex makes v present. It returns whether the stored set changed,
// which is false both for out-of-bounds v and for an already present v.
func (l *Lattice2D) AddVertex(v Vertex) bool {
	if !l.IsInside(v) {
		return false
	}
	changed := l.mark(v, true)
	l.rebalance()

	return changed
}

// RemoveVertex makes v absent. It returns whether the stored set changed.
func (l *Lattice2D) RemoveVertex(v Vertex) bool {
	if !l.IsInside(v) {
		return false
	}
	changed := l.mark(v, false)
	l.rebalance()

	return changed
}

// regionValid reports whether both corners are inside a non-empty lattice.
func (l *Lattice2D) regionValid(from, to Vertex) bool {
	return l.columns > 0 && l.rows > 0 && l.IsInside(from) && l.IsInside(to)
}

// AddVertexArea makes every vertex of the inclusive rectangle [from,to]
// present and returns how many stored entries changed.
// Returns 0 if either corner is out of bounds.
func (l *Lattice2D) AddVertexArea(from, to Vertex) int {
	if !l.regionValid(from, to) {
		return 0
	}
	return l.markAll(l.Area(from, to), true)
}

// RemoveVertexArea makes every vertex of [from,to] absent.
func (l *Lattice2D) RemoveVertexArea(from, to Vertex) int {
	if !l.regionValid(from, to) {
		return 0
	}
	return l.markAll(l.Area(from, to), false)
}

// AddVertexPerimeter makes the boundary cells of [from,to] present.
func (l *Lattice2D) AddVertexPerimeter(from, to Vertex) int {
	if !l.regionValid(from, to) {
		return 0
	}
	return l.markAll(l.Perimeter(from, to), true)
}

// RemoveVertexPerimeter makes the boundary cells of [from,to] absent.
func (l *Lattice2D) RemoveVertexPerimeter(from, to Vertex) int {
	if !l.regionValid(from, to) {
		return 0
	}
	return l.markAll(l.Perimeter(from, to), false)
}

// AddBorder makes the outermost ring of the lattice present.
func (l *Lattice2D) AddBorder() int {
	return l.AddVertexPerimeter(Vertex{0, 0}, Vertex{l.columns - 1, l.rows - 1})
}

// RemoveBorder makes the outermost ring of the lattice absent.
func (l *Lattice2D) RemoveBorder() int {
	return l.RemoveVertexPerimeter(Vertex{0, 0}, Vertex{l.columns - 1, l.rows - 1})
}

// AddVertexVector makes present every vertex whose row-major bit is set.
// Clear bits are left untouched. The vector length must equal Size();
// otherwise nothing happens and 0 is returned.
func (l *Lattice2D) AddVertexVector(bits *bitset.BitSet) int {
	return l.markVector(bits, true)
}

// RemoveVertexVector makes absent every vertex whose row-major bit is set.
func (l *Lattice2D) RemoveVertexVector(bits *bitset.BitSet) int {
	return l.markVector(bits, false)
}

func (l *Lattice2D) markVector(bits *bitset.BitSet, want bool) int {
	if bits == nil || bits.Len() != uint(l.Size()) {
		return 0
	}
	count := 0
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		if l.mark(l.ToVertexCoords(int(i)), want) {
			count++
		}
	}
	l.rebalance()

	return count
}

// AsBitSet materializes the row-major presence bitmap of length Size().
func (l *Lattice2D) AsBitSet() *bitset.BitSet {
	size := uint(l.Size())
	bits := bitset.New(size)
	if l.dense && size > 0 {
		bits.FlipRange(0, size)
		for v := range l.exclusions {
			bits.Clear(uint(l.ToVertexIndex(v.Col, v.Row)))
		}
		return bits
	}
	for v := range l.exclusions {
		bits.Set(uint(l.ToVertexIndex(v.Col, v.Row)))
	}

	return bits
}

// Clear removes every vertex in O(1). Reports whether anything was present.
func (l *Lattice2D) Clear() bool {
	changed := !l.IsEmpty()
	l.dense = false
	l.exclusions = make(map[Vertex]struct{})

	return changed
}

// Fill makes every vertex present in O(1). Reports whether anything was absent.
func (l *Lattice2D) Fill() bool {
	changed := !l.IsFull()
	l.dense = true
	l.exclusions = make(map[Vertex]struct{})

	return changed
}

// Resize changes the extent to columns×rows. Vertices outside the new extent
// are dropped; cells gained by growing start absent. It returns true iff a
// present vertex was truncated.
func (l *Lattice2D) Resize(columns, rows int) bool {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	outside := func(v Vertex) bool { return v.Col >= columns || v.Row >= rows }

	// 1) Detect truncation of present vertices.
	truncated := false
	if columns < l.columns || rows < l.rows {
		if l.dense {
		scan:
			for row := 0; row < l.rows; row++ {
				for col := 0; col < l.columns; col++ {
					v := Vertex{col, row}
					if outside(v) && l.present(v) {
						truncated = true
						break scan
					}
				}
			}
		} else {
			for v := range l.exclusions {
				if outside(v) {
					truncated = true
					break
				}
			}
		}
	}

	// 2) Drop stored entries beyond the new extent.
	for v := range l.exclusions {
		if outside(v) {
			delete(l.exclusions, v)
		}
	}

	// 3) In a dense lattice newly gained cells must be recorded as absent.
	if l.dense {
		for row := 0; row < rows; row++ {
			for col := 0; col < columns; col++ {
				if col >= l.columns || row >= l.rows {
					l.exclusions[Vertex{col, row}] = struct{}{}
				}
			}
		}
	}

	l.columns, l.rows = columns, rows
	l.rebalance()

	return truncated
}
