package astar_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/csr"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
)

func vx(col, row int) lattice.Vertex { return lattice.Vertex{Col: col, Row: row} }

func fullLattice(columns, rows int, opts ...lattice.Option) *lattice.Lattice2D {
	l := lattice.New(columns, rows, opts...)
	l.Fill()
	return l
}

func configFor(l *lattice.Lattice2D, to lattice.Vertex) astar.Config {
	return astar.NewConfig(l.ToUndirectedCSR(), l.Columns(), l.Rows()).
		WithTarget(l.ToVertexIndex(to.Col, to.Row)).
		WithNet(1).
		WithPresence(l.AsBitSet())
}

func quietRouter(opts ...astar.Option) *astar.Router {
	return astar.New(append([]astar.Option{astar.WithLogger(slog.New(slog.DiscardHandler))}, opts...)...)
}

// route searches from -> to on l and fails the test on error.
func route(t *testing.T, l *lattice.Lattice2D, from, to lattice.Vertex, opts ...astar.Option) *astar.Result {
	t.Helper()
	res, err := quietRouter(opts...).Compute(context.Background(), configFor(l, to), l.ToVertexIndex(from.Col, from.Row))
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// requireValidRoute checks endpoints, adjacency, and the reported cost and turns.
func requireValidRoute(t *testing.T, l *lattice.Lattice2D, res *astar.Result, from, to lattice.Vertex) {
	t.Helper()
	require.True(t, res.Found())
	require.Equal(t, from, res.Path[0])
	require.Equal(t, to, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		require.True(t, l.HasEdge(res.Path[i-1], res.Path[i]), "step %v -> %v", res.Path[i-1], res.Path[i])
	}
	require.Equal(t, len(res.Path)-1, res.Cost)
	require.Equal(t, pathcost.CountTurns(res.Path), res.Turns)
	require.Len(t, res.Tape, len(res.Path))
}

// bfsDistance is the reference shortest step count, or -1 if unreachable.
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
