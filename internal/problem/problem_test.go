package problem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/csr"
	"github.com/katalvlaran/gridroute/internal/problem"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
)

const sample = `
columns: 6
rows: 4
heuristic: zero
mask: |
  ......
  ..#...
  ..#...
  ......
walls:
  - {from: {col: 4, row: 0}, to: {col: 5, row: 1}}
routes:
  - {net: 1, source: {col: 0, row: 0}, target: {col: 5, row: 3}}
  - {net: 2, source: {col: 0, row: 3}, target: {col: 3, row: 0}}
`

func TestParse_Sample(t *testing.T) {
	p, err := problem.Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 6, p.Columns)
	require.True(t, p.Fill, "fill defaults to true")
	require.Equal(t, pathcost.Zero, p.HeuristicValue())
	require.Len(t, p.Routes, 2)

	l := p.Lattice()
	require.False(t, l.Diagonal())
	require.False(t, l.HasVertex(lattice.Vertex{Col: 2, Row: 1}))
	require.False(t, l.HasVertex(lattice.Vertex{Col: 2, Row: 2}))
	require.False(t, l.HasVertex(lattice.Vertex{Col: 4, Row: 0}), "wall cell")
	require.True(t, l.HasVertex(lattice.Vertex{Col: 0, Row: 0}))
	require.Equal(t, 24-2-4, l.Len())

	reqs := p.Requests(l, l.ToUndirectedCSR())
	require.Len(t, reqs, 2)
	require.Equal(t, 0, reqs[0].Source)
	require.Equal(t, 23, reqs[0].Config.Target)
	require.Equal(t, 1, reqs[0].Config.Net)
	require.Equal(t, 18, reqs[1].Source)
	require.Equal(t, 3, reqs[1].Config.Target)
}

func TestParse_Defaults(t *testing.T) {
	p, err := problem.Parse([]byte("{}"))
	require.NoError(t, err)
	require.Equal(t, problem.DefaultProblem(), p)
	require.True(t, p.Lattice().IsFull())
}

func TestLattice_EditOrder(t *testing.T) {
	p := problem.DefaultProblem()
	p.Columns, p.Rows = 5, 5
	p.Fill = false
	p.Diagonal = true
	p.Open = []problem.Rect{{To: problem.Point{Col: 4, Row: 4}}}
	p.Obstacles = []problem.Rect{{From: problem.Point{Col: 2, Row: 2}, To: problem.Point{Col: 2, Row: 2}}}
	p.BlockBorder = true
	require.NoError(t, p.Validate())

	l := p.Lattice()
	require.True(t, l.Diagonal())
	require.Equal(t, 8, l.Len(), "3×3 interior minus its center")
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"ZeroExtent":    "columns: 0",
		"Heuristic":     "heuristic: bogus",
		"RectOutside":   "obstacles: [{from: {col: 0, row: 0}, to: {col: 8, row: 0}}]",
		"RectReversed":  "open: [{from: {col: 3, row: 3}, to: {col: 1, row: 1}}]",
		"RouteOutside":  "routes: [{net: 1, source: {col: 0, row: 0}, target: {col: 0, row: 9}}]",
		"MaskRows":      "columns: 2\nrows: 2\nmask: \"..\"",
		"MaskColumns":   "columns: 2\nrows: 2\nmask: \"..\\n...\"",
		"MaskCharacter": "columns: 2\nrows: 1\nmask: \".x\"",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := problem.Parse([]byte(doc))
			require.ErrorIs(t, err, problem.ErrInvalidProblem)
		})
	}

	_, err := problem.Parse([]byte("columns: [oops"))
	require.Error(t, err)
	require.NotErrorIs(t, err, problem.ErrInvalidProblem)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	p, err := problem.Load(path)
	require.NoError(t, err)
	require.Equal(t, pathcost.Zero, p.HeuristicValue())

	t.Setenv("GRIDROUTE_HEURISTIC", "octile")
	t.Setenv("GRIDROUTE_DIAGONAL", "1")
	p, err = problem.Load(path)
	require.NoError(t, err)
	require.Equal(t, pathcost.Octile, p.HeuristicValue())
	require.True(t, p.Lattice().Diagonal())

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestHeuristicValue_FollowsConnectivity(t *testing.T) {
	p := problem.DefaultProblem()
	require.Empty(t, p.Heuristic)
	require.Equal(t, pathcost.Manhattan, p.HeuristicValue())

	p.Diagonal = true
	require.Equal(t, pathcost.Octile, p.HeuristicValue())

	p.Heuristic = "zero"
	require.Equal(t, pathcost.Zero, p.HeuristicValue(), "a named heuristic wins")
}

// TestParse_IgnoresEnvironment keeps Parse a function of its input only.
func TestParse_IgnoresEnvironment(t *testing.T) {
	t.Setenv("GRIDROUTE_HEURISTIC", "octile")
	t.Setenv("GRIDROUTE_DIAGONAL", "1")
	p, err := problem.Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, pathcost.Zero, p.HeuristicValue())
	require.False(t, p.Diagonal)
}

// TestRequests_SkipAbsentEndpoints routes an absent cell to itself.
func TestRequests_SkipAbsentEndpoints(t *testing.T) {
	p, err := problem.Parse([]byte(`
columns: 3
rows: 3
obstacles: [{from: {col: 1, row: 1}, to: {col: 1, row: 1}}]
routes:
  - {net: 1, source: {col: 1, row: 1}, target: {col: 1, row: 1}}
  - {net: 2, source: {col: 0, row: 0}, target: {col: 0, row: 0}}
`))
	require.NoError(t, err)
	l := p.Lattice()
	results, err := astar.ComputeAll(context.Background(), astar.New(), p.Requests(l, l.ToUndirectedCSR()), 1)
	require.NoError(t, err)
	require.False(t, results[0].Found())
	require.True(t, results[1].Found())
}

// TestRequests_DiagonalDefaultIsShortest routes every pair of cells on
// octilinear problems without a named heuristic and compares the step count
// with breadth-first distances.
func TestRequests_DiagonalDefaultIsShortest(t *testing.T) {
	for cols := 5; cols <= 7; cols++ {
		p := problem.DefaultProblem()
		p.Columns, p.Rows = cols, 5
		p.Diagonal = true
		p.Obstacles = []problem.Rect{{From: problem.Point{Row: 2}, To: problem.Point{Col: cols - 2, Row: 2}}}
		l := p.Lattice()
		for _, from := range l.Vertices() {
			for _, to := range l.Vertices() {
				p.Routes = append(p.Routes, problem.Net{
					Net:    len(p.Routes) + 1,
					Source: problem.Point{Col: from.Col, Row: from.Row},
					Target: problem.Point{Col: to.Col, Row: to.Row},
				})
			}
		}
		require.NoError(t, p.Validate())

		g := l.ToUndirectedCSR()
		reqs := p.Requests(l, g)
		results, err := astar.ComputeAll(context.Background(), astar.New(astar.WithHeuristic(p.HeuristicValue())), reqs, 0)
		require.NoError(t, err)
		for i, res := range results {
			require.True(t, res.Found())
			require.Equal(t, bfsDistance(g, reqs[i].Source, reqs[i].Config.Target), res.Cost,
				"w=%d %v -> %v", cols, res.Path[0], res.Path[len(res.Path)-1])
		}
	}
}

func bfsDistance(g *csr.Graph, source, target int) int {
	dist := make([]int, g.NodeCount())
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist[target]
}
