package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/lattice"
)

// bitsOf builds a row-major bitset from 0/1 digits.
func bitsOf(digits ...int) *bitset.BitSet {
	b := bitset.New(uint(len(digits)))
	for i, d := range digits {
		if d != 0 {
			b.Set(uint(i))
		}
	}
	return b
}

// staircase is a 5x5 triangular mask shared by the vector tests.
func staircase() *bitset.BitSet {
	return bitsOf(
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 0,
		1, 1, 1, 0, 0,
		1, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
	)
}

// TestAddVertex_ReturnValue distinguishes the stored-set change reported by
// AddVertex from the representation it leaves behind.
func TestAddVertex_ReturnValue(t *testing.T) {
	l := lattice.New(2, 2)
	require.False(t, l.AddVertex(lattice.Vertex{Col: 2, Row: 0}), "out of bounds")
	require.True(t, l.AddVertex(lattice.Vertex{Col: 0, Row: 0}))
	require.False(t, l.AddVertex(lattice.Vertex{Col: 0, Row: 0}), "already present")
	require.True(t, l.AddVertex(lattice.Vertex{Col: 1, Row: 0}))
	require.Equal(t, 2, l.ExclusionsLen())
	require.False(t, l.Dense())

	// The third insert crosses Size/2: the stored set shrinks to the single
	// absent vertex even though a vertex was added.
	require.True(t, l.AddVertex(lattice.Vertex{Col: 0, Row: 1}))
	require.True(t, l.Dense())
	require.Equal(t, 1, l.ExclusionsLen())
	require.Equal(t, 3, l.Len())

	// Present in a dense lattice means "not stored": nothing to change.
	require.False(t, l.AddVertex(lattice.Vertex{Col: 0, Row: 0}))
	require.True(t, l.AddVertex(lattice.Vertex{Col: 1, Row: 1}))
	require.True(t, l.IsFull())
	require.Zero(t, l.ExclusionsLen())
}

// TestRemoveVertex_ReturnValue mirrors the add case.
func TestRemoveVertex_ReturnValue(t *testing.T) {
	l := lattice.New(3, 3)
	require.False(t, l.RemoveVertex(lattice.Vertex{Col: 1, Row: 1}), "already absent")
	l.Fill()
	require.True(t, l.RemoveVertex(lattice.Vertex{Col: 1, Row: 1}))
	require.False(t, l.RemoveVertex(lattice.Vertex{Col: 1, Row: 1}))
	require.False(t, l.RemoveVertex(lattice.Vertex{Col: -1, Row: 1}))
	require.Equal(t, 8, l.Len())
}

// TestClearFill covers the O(1) bulk operations and their return values.
func TestClearFill(t *testing.T) {
	l := lattice.New(4, 3)
	require.True(t, l.IsEmpty())
	require.False(t, l.Clear())
	require.True(t, l.Fill())
	require.True(t, l.IsFull())
	require.False(t, l.Fill())
	require.Equal(t, 12, l.Len())
	require.True(t, l.Clear())
	require.True(t, l.IsEmpty())

	l.Invert()
	require.True(t, l.IsFull(), "inverting an empty lattice fills it")
}

// TestAreaEdits checks counts and region validity for area edits.
func TestAreaEdits(t *testing.T) {
	l := lattice.New(5, 5)
	require.Equal(t, 9, l.AddVertexArea(lattice.Vertex{Col: 1, Row: 1}, lattice.Vertex{Col: 3, Row: 3}))
	require.Equal(t, 0, l.AddVertexArea(lattice.Vertex{Col: 1, Row: 1}, lattice.Vertex{Col: 3, Row: 3}))
	// (1,1) is already present.
	require.Equal(t, 3, l.AddVertexArea(lattice.Vertex{Col: 0, Row: 0}, lattice.Vertex{Col: 1, Row: 1}))
	require.Equal(t, 0, l.AddVertexArea(lattice.Vertex{Col: 0, Row: 0}, lattice.Vertex{Col: 5, Row: 1}), "corner out of bounds")
	require.Equal(t, 0, l.AddVertexArea(lattice.Vertex{Col: 3, Row: 3}, lattice.Vertex{Col: 1, Row: 1}), "reversed corners")
	require.Equal(t, 12, l.Len())

	require.Equal(t, 12, l.RemoveVertexArea(lattice.Vertex{}, lattice.Vertex{Col: 4, Row: 4}))
	require.True(t, l.IsEmpty())

	empty := lattice.New(0, 0)
	require.Equal(t, 0, empty.AddVertexArea(lattice.Vertex{}, lattice.Vertex{}))
	require.Equal(t, 0, empty.AddBorder())
}

// TestPerimeterEdits checks the perimeter excludes the interior.
func TestPerimeterEdits(t *testing.T) {
	l := lattice.New(5, 5)
	require.Equal(t, 8, l.AddVertexPerimeter(lattice.Vertex{Col: 1, Row: 1}, lattice.Vertex{Col: 3, Row: 3}))
	require.False(t, l.HasVertex(lattice.Vertex{Col: 2, Row: 2}))
	require.True(t, l.HasVertex(lattice.Vertex{Col: 1, Row: 2}))
	require.True(t, l.HasVertex(lattice.Vertex{Col: 3, Row: 2}))

	require.Equal(t, 8, l.RemoveVertexPerimeter(lattice.Vertex{Col: 1, Row: 1}, lattice.Vertex{Col: 3, Row: 3}))
	require.True(t, l.IsEmpty())

	require.Equal(t, 16, l.AddBorder())
	require.Equal(t, 16, l.Len())
	require.Equal(t, 0, l.AddBorder())
	require.Equal(t, 16, l.RemoveBorder())
}

// TestVectorEdits checks additive semantics: clear bits never change a cell.
func TestVectorEdits(t *testing.T) {
	l := lattice.New(5, 5)
	l.AddVertex(lattice.Vertex{Col: 4, Row: 4}) // clear in the mask
	require.Equal(t, 15, l.AddVertexVector(staircase()))
	require.Equal(t, 16, l.Len())
	require.True(t, l.HasVertex(lattice.Vertex{Col: 4, Row: 4}))

	require.Equal(t, 15, l.RemoveVertexVector(staircase()))
	require.Equal(t, 1, l.Len())
	require.True(t, l.HasVertex(lattice.Vertex{Col: 4, Row: 4}))

	require.Equal(t, 0, l.AddVertexVector(bitset.New(24)), "length mismatch is a no-op")
	require.Equal(t, 0, l.AddVertexVector(nil))
	require.Equal(t, 1, l.Len())
}

// TestAsBitSet_RoundTrip checks vector edits and AsBitSet are inverse over a
// freshly cleared lattice, with bits in row-major order.
func TestAsBitSet_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, dims := range [][2]int{{5, 5}, {4, 7}, {9, 2}, {1, 1}} {
		for trial := 0; trial < 20; trial++ {
			l := lattice.New(dims[0], dims[1])
			want := bitset.New(uint(l.Size()))
			for i := 0; i < l.Size(); i++ {
				if rng.Intn(3) == 0 {
					want.Set(uint(i))
				}
			}
			l.AddVertexVector(want)
			got := l.AsBitSet()
			require.True(t, want.Equal(got), "dims %v: want %v got %v", dims, want, got)
			require.EqualValues(t, want.Count(), l.Len())
		}
	}

	l := lattice.New(3, 2)
	l.Fill()
	l.RemoveVertex(lattice.Vertex{Col: 2, Row: 0})
	require.True(t, bitsOf(1, 1, 0, 1, 1, 1).Equal(l.AsBitSet()))
	require.EqualValues(t, 0, lattice.New(0, 3).AsBitSet().Len())
}

// TestRebalance_Invariant applies random edits and compares every cell with a
// reference set. After each edit the stored set holds at most half the grid.
func TestRebalance_Invariant(t *testing.T) {
	const cols, rows = 7, 6
	rng := rand.New(rand.NewSource(42))
	l := lattice.New(cols, rows)
	ref := make(map[lattice.Vertex]bool)

	randVertex := func() lattice.Vertex {
		return lattice.Vertex{Col: rng.Intn(cols), Row: rng.Intn(rows)}
	}
	randRect := func() (lattice.Vertex, lattice.Vertex) {
		a, b := randVertex(), randVertex()
		if a.Col > b.Col {
			a.Col, b.Col = b.Col, a.Col
		}
		if a.Row > b.Row {
			a.Row, b.Row = b.Row, a.Row
		}
		return a, b
	}
	// apply updates ref and returns how many cells flipped.
	apply := func(vs []lattice.Vertex, want bool) int {
		flipped := 0
		for _, v := range vs {
			if ref[v] != want {
				flipped++
			}
			ref[v] = want
		}
		return flipped
	}

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(9); op {
		case 0:
			v := randVertex()
			require.Equal(t, apply([]lattice.Vertex{v}, true) == 1, l.AddVertex(v))
		case 1:
			v := randVertex()
			require.Equal(t, apply([]lattice.Vertex{v}, false) == 1, l.RemoveVertex(v))
		case 2:
			a, b := randRect()
			require.Equal(t, apply(l.Area(a, b), true), l.AddVertexArea(a, b))
		case 3:
			a, b := randRect()
			require.Equal(t, apply(l.Area(a, b), false), l.RemoveVertexArea(a, b))
		case 4:
			a, b := randRect()
			require.Equal(t, apply(l.Perimeter(a, b), true), l.AddVertexPerimeter(a, b))
		case 5:
			a, b := randRect()
			require.Equal(t, apply(l.Perimeter(a, b), false), l.RemoveVertexPerimeter(a, b))
		case 6, 7:
			bits := bitset.New(cols * rows)
			var vs []lattice.Vertex
			for i := 0; i < cols*rows; i++ {
				if rng.Intn(4) == 0 {
					bits.Set(uint(i))
					vs = append(vs, l.ToVertexCoords(i))
				}
			}
			if op == 6 {
				require.Equal(t, apply(vs, true), l.AddVertexVector(bits))
			} else {
				require.Equal(t, apply(vs, false), l.RemoveVertexVector(bits))
			}
		case 8:
			if rng.Intn(2) == 0 {
				l.Fill()
				apply(l.Area(lattice.Vertex{}, lattice.Vertex{Col: cols - 1, Row: rows - 1}), true)
			} else {
				l.Clear()
				ref = make(map[lattice.Vertex]bool)
			}
		}

		require.LessOrEqual(t, l.ExclusionsLen(), l.Size()/2, "step %d", step)
		present := 0
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				v := lattice.Vertex{Col: col, Row: row}
				require.Equal(t, ref[v], l.HasVertex(v), "step %d vertex %v", step, v)
				if ref[v] {
					present++
				}
			}
		}
		require.Equal(t, present, l.Len())
	}
}

// TestResize covers truncation detection and the dense grow case.
func TestResize(t *testing.T) {
	t.Run("SparseTruncates", func(t *testing.T) {
		l := lattice.New(5, 5)
		l.AddVertex(lattice.Vertex{Col: 4, Row: 4})
		l.AddVertex(lattice.Vertex{Col: 1, Row: 1})
		require.True(t, l.Resize(3, 3))
		require.Equal(t, 1, l.Len())
		require.False(t, l.HasVertex(lattice.Vertex{Col: 4, Row: 4}))
	})

	t.Run("SparseKeeps", func(t *testing.T) {
		l := lattice.New(5, 5)
		l.AddVertex(lattice.Vertex{Col: 1, Row: 1})
		require.False(t, l.Resize(3, 3))
		require.True(t, l.HasVertex(lattice.Vertex{Col: 1, Row: 1}))
		require.Equal(t, 3, l.Columns())
		require.Equal(t, 3, l.Rows())
	})

	t.Run("DenseShrinks", func(t *testing.T) {
		l := lattice.New(5, 5)
		l.Fill()
		require.True(t, l.Resize(3, 3))
		require.True(t, l.IsFull())
		require.Equal(t, 9, l.Len())
	})

	t.Run("DenseShrinkOnlyAbsentCut", func(t *testing.T) {
		l := lattice.New(3, 3)
		l.Fill()
		l.RemoveVertexArea(lattice.Vertex{Col: 2, Row: 0}, lattice.Vertex{Col: 2, Row: 2})
		require.True(t, l.Dense())
		require.False(t, l.Resize(2, 3))
		require.True(t, l.IsFull())
	})

	t.Run("DenseGrowsWithAbsentCells", func(t *testing.T) {
		l := lattice.New(3, 3)
		l.Fill()
		require.False(t, l.Resize(5, 5))
		require.Equal(t, 9, l.Len())
		require.False(t, l.HasVertex(lattice.Vertex{Col: 4, Row: 4}))
		require.False(t, l.HasVertex(lattice.Vertex{Col: 3, Row: 0}))
		require.True(t, l.HasVertex(lattice.Vertex{Col: 2, Row: 2}))
		assert.LessOrEqual(t, l.ExclusionsLen(), l.Size()/2)
	})

	t.Run("NegativeClamps", func(t *testing.T) {
		l := lattice.New(2, 2)
		l.Fill()
		require.True(t, l.Resize(-1, 4))
		require.Zero(t, l.Size())
		require.True(t, l.IsEmpty())
	})
}
