package lattice

// ConnectedComponents finds all maximal groups of present vertices that are
// connected under the active connectivity. Each component is a slice of
// row-major indices in BFS discovery order; components are ordered by their
// lowest index.
//
// To convert an index back to (col,row), use ToVertexCoords.
//
// Time:   O(V×d), d = 4 or 8.
// Memory: O(Columns×Rows) for visited flags.
func (l *Lattice2D) ConnectedComponents() [][]int {
	seen := make([]bool, l.Size())
	var comps [][]int

	for _, start := range l.Vertices() {
		i0 := l.ToVertexIndex(start.Col, start.Row)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := l.ToVertexCoords(queue[qi])
			for _, n := range l.Neighbours(u) {
				ni := l.ToVertexIndex(n.Col, n.Row)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
