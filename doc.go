// Package gridroute routes nets across a rectangular grid lattice.
//
// The module is split into small packages that build on each other:
//
//	lattice   - Lattice2D: a Columns×Rows grid of present/absent cells with
//	            rectilinear or octilinear adjacency, bulk edits and an ASCII render
//	csr       - immutable compressed-sparse-row graphs built from lattice snapshots
//	pathcost  - distance heuristics and segment orientations for turn counting
//	tape      - edit records (add, remove, move, batches) with advance/rewind
//	astar     - the A* router: shortest route first, fewest turns second,
//	            emitted as a tape of route cells
//
// A typical flow:
//
//	l := lattice.New(16, 16)
//	l.Fill()
//	l.RemoveVertexArea(lattice.Vertex{Col: 4, Row: 0}, lattice.Vertex{Col: 4, Row: 12})
//	g := l.ToUndirectedCSR()
//
//	cfg := astar.NewConfig(g, l.Columns(), l.Rows()).
//		WithTarget(l.ToVertexIndex(15, 0)).
//		WithNet(1)
//	res, err := astar.New().Compute(ctx, cfg, l.ToVertexIndex(0, 0))
//
// The gridroute command (cmd/gridroute) loads a YAML problem, renders it and
// routes its nets.
package gridroute
