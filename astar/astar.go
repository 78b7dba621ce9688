package astar

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
	"github.com/katalvlaran/gridroute/tape"
)

const tracerName = "github.com/katalvlaran/gridroute/astar"

// Router is an A* Engine. It holds configuration only; every Compute call
// owns its own search state, so one Router may serve concurrent searches.
type Router struct {
	options Options
	tracer  trace.Tracer
}

var _ Engine = (*Router)(nil)

// New returns a Router configured by opts.
func New(opts ...Option) *Router {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Router{options: cfg, tracer: tp.Tracer(tracerName)}
}

// Compute routes from the row-major index source to cfg.Target.
//
// Behavior:
//  1. Validate the graph, the boundary and both indices.
//  2. Search states (cell, incoming orientation) in (g+h, turns) order, so
//     among routes of equal length the one with fewer turns wins.
//  3. Stop when the target is taken from the open set and walk parent links
//     back to the source.
//
// Every edge costs 1. With a target but no route, or without a target, the
// Result is empty and err is nil. A cancelled ctx aborts with ctx.Err().
//
// Complexity: O((V + E) log V) with V = 5×nodes states.
func (r *Router) Compute(ctx context.Context, cfg Config, source int) (*Result, error) {
	ctx, span := startComputeSpan(ctx, r.tracer, source, cfg.Target, r.options.Heuristic)
	defer span.End()
	started := time.Now()

	res, err := r.compute(ctx, cfg, source)
	if err != nil {
		setComputeSpanError(span, err)
		r.options.Logger.Debug("astar: search failed",
			slog.Int("source", source),
			slog.Int("target", cfg.Target),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	elapsed := time.Since(started)
	setComputeSpanResult(span, res)
	recordSearchMetrics(ctx, elapsed, res.Expanded, res.Found())
	r.options.Logger.Debug("astar: search finished",
		slog.Int("source", source),
		slog.Int("target", cfg.Target),
		slog.String("heuristic", r.options.Heuristic.String()),
		slog.Bool("found", res.Found()),
		slog.Int("cost", res.Cost),
		slog.Int("turns", res.Turns),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

func (r *Router) compute(ctx context.Context, cfg Config, source int) (*Result, error) {
	// 1) Validate the request.
	if cfg.Graph == nil {
		return nil, ErrNilGraph
	}
	n := cfg.Graph.NodeCount()
	if cfg.Columns < 0 || cfg.Rows < 0 || cfg.Columns*cfg.Rows != n {
		return nil, fmt.Errorf("%w: %d×%d boundary for %d nodes", ErrBoundaryMismatch, cfg.Columns, cfg.Rows, n)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if cfg.Target >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, cfg.Target, n)
	}
	if cfg.Present != nil && cfg.Present.Len() != uint(n) {
		return nil, fmt.Errorf("%w: presence holds %d cells for %d nodes", ErrBoundaryMismatch, cfg.Present.Len(), n)
	}
	if cfg.Target < 0 || !cfg.present(source) || !cfg.present(cfg.Target) {
		return &Result{}, nil
	}

	// 2) Search with a fresh runner.
	run := newRunner(cfg, r.options.Heuristic)
	goal, err := run.search(ctx, source)
	if err != nil {
		return nil, err
	}
	if goal < 0 {
		return &Result{Expanded: run.expanded}, nil
	}

	// 3) Reconstruct and emit. Cost and turns are read off the path: a
	// re-opened ancestor can leave the goal's stored g above its chain.
	path := run.reconstruct(goal)
	return &Result{
		Path:     path,
		Cost:     len(path) - 1,
		Turns:    pathcost.CountTurns(path),
		Expanded: run.expanded,
		Tape:     emitTape(path, cfg),
	}, nil
}

// runner holds the mutable state of a single search. States are indexed
// node*pathcost.NumOrientations + incoming orientation.
type runner struct {
	cfg    Config
	h      pathcost.Heuristic
	grid   *lattice.Lattice2D // coordinate mapping only
	target lattice.Vertex

	g      []int  // best known steps per state, -1 if unseen
	turns  []int  // turns along that best route
	parent []int  // predecessor state, -1 for the source
	closed []bool // finalized states

	pq       nodePQ
	seq      uint64
	expanded int
}

func newRunner(cfg Config, h pathcost.Heuristic) *runner {
	grid := lattice.New(cfg.Columns, cfg.Rows)
	states := cfg.Graph.NodeCount() * pathcost.NumOrientations
	r := &runner{
		cfg:    cfg,
		h:      h,
		grid:   grid,
		target: grid.ToVertexCoords(cfg.Target),
		g:      make([]int, states),
		turns:  make([]int, states),
		parent: make([]int, states),
		closed: make([]bool, states),
	}
	for i := range r.g {
		r.g[i] = -1
		r.parent[i] = -1
	}

	return r
}

// search runs the expansion loop and returns the goal state, or -1 when the
// open set is exhausted.
func (r *runner) search(ctx context.Context, source int) (int, error) {
	start := source * pathcost.NumOrientations
	r.g[start] = 0
	r.push(start, NewPathNode(r.grid.ToVertexCoords(source), 0, r.target, r.h, 0))

	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		s := item.state
		// Skip finalized states and entries superseded by a better push.
		if r.closed[s] || item.node.CostFromStart != r.g[s] || item.node.OrientationCost != r.turns[s] {
			continue
		}
		r.closed[s] = true
		r.expanded++

		if item.node.Position == r.target {
			return s, nil
		}
		r.relax(s, item.node)
	}

	return -1, nil
}

// relax pushes every neighbour state of s whose (g, turns) improves,
// closed or not.
func (r *runner) relax(s int, node PathNode) {
	u := s / pathcost.NumOrientations
	incoming := pathcost.Orientation(s % pathcost.NumOrientations)

	for _, v := range r.cfg.Graph.Neighbors(u) {
		pos := r.grid.ToVertexCoords(v)
		o := pathcost.OrientationOf(node.Position, pos)
		ns := v*pathcost.NumOrientations + int(o)
		ng := node.CostFromStart + 1
		nt := node.OrientationCost + pathcost.TurnCost(incoming, o)
		if r.g[ns] >= 0 && (ng > r.g[ns] || (ng == r.g[ns] && nt >= r.turns[ns])) {
			continue
		}
		// A strictly better candidate re-opens a closed state. This only
		// happens when the heuristic overestimates, e.g. Manhattan on an
		// octilinear lattice.
		r.closed[ns] = false
		r.g[ns] = ng
		r.turns[ns] = nt
		r.parent[ns] = s
		r.push(ns, NewPathNode(pos, ng, r.target, r.h, nt))
	}
}

func (r *runner) push(state int, node PathNode) {
	heap.Push(&r.pq, &nodeItem{node: node, state: state, seq: r.seq})
	r.seq++
}

// reconstruct walks parent links from goal back to the source. A parent
// always has a lower g than its child, re-opening included, so the walk ends.
func (r *runner) reconstruct(goal int) []lattice.Vertex {
	var rev []lattice.Vertex
	for s := goal; s >= 0; s = r.parent[s] {
		rev = append(rev, r.grid.ToVertexCoords(s/pathcost.NumOrientations))
	}
	path := make([]lattice.Vertex, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// emitTape turns a route into one Add per cell, remembering any payload the
// caller already had there.
func emitTape(path []lattice.Vertex, cfg Config) []tape.Item[lattice.Vertex, Cell] {
	items := make([]tape.Item[lattice.Vertex, Cell], len(path))
	for i, v := range path {
		kind := Route
		switch {
		case i == 0:
			kind = Start
		case i == len(path)-1:
			kind = Target
		}
		cell := Cell{Kind: kind, Net: cfg.Net, Cost: i}
		if prev, ok := cfg.Existing[v]; ok {
			items[i] = tape.NewAddReplacing(v, cell, prev)
		} else {
			items[i] = tape.NewAdd(v, cell)
		}
	}

	return items
}

// nodeItem is a heap entry. seq keeps equal-priority pops in insertion order
// so results are deterministic.
type nodeItem struct {
	node  PathNode
	state int
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem using lazy decrease-key: improved states
// are pushed again and stale entries are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if c := pq[i].node.Compare(pq[j].node); c != 0 {
		return c < 0
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
