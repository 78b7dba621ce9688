package astar

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/csr"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
	"github.com/katalvlaran/gridroute/tape"
)

// Sentinel errors for caller contract violations. An unreachable or missing
// target is not an error; it yields an empty Result.
var (
	// ErrNilGraph indicates Config.Graph is nil.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrBoundaryMismatch indicates Columns×Rows differs from the graph's node count
	// or from the length of Config.Present.
	ErrBoundaryMismatch = errors.New("astar: boundary does not match graph node count")

	// ErrSourceOutOfRange indicates a source index outside [0, node count).
	ErrSourceOutOfRange = errors.New("astar: source index out of range")

	// ErrTargetOutOfRange indicates a target index at or beyond the node count.
	ErrTargetOutOfRange = errors.New("astar: target index out of range")
)

// NoTarget is the Config.Target value for a search without a target.
const NoTarget = -1

// Config describes one routing request over a graph snapshot.
//
// Graph is usually produced by lattice.Lattice2D.ToUndirectedCSR; node i is
// the cell with row-major index i of a Columns×Rows lattice. Existing holds
// the caller's current payloads so the emitted tape can be rewound.
//
// Present is the lattice's presence vector (lattice.Lattice2D.AsBitSet). The
// graph alone cannot tell an absent cell from an isolated present one; with
// Present set, a route from or to an absent cell is never found. A nil
// Present treats every node as present.
type Config struct {
	Graph    *csr.Graph
	Target   int
	Columns  int
	Rows     int
	Net      int
	Existing map[lattice.Vertex]Cell
	Present  *bitset.BitSet
}

// NewConfig returns a Config without a target for a columns×rows graph.
func NewConfig(g *csr.Graph, columns, rows int) Config {
	return Config{Graph: g, Target: NoTarget, Columns: columns, Rows: rows}
}

// WithTarget returns a copy of c routing to the row-major index target.
func (c Config) WithTarget(target int) Config {
	c.Target = target
	return c
}

// WithNet returns a copy of c tagging emitted cells with net.
func (c Config) WithNet(net int) Config {
	c.Net = net
	return c
}

// WithExisting returns a copy of c with the caller's current cell payloads.
func (c Config) WithExisting(cells map[lattice.Vertex]Cell) Config {
	c.Existing = cells
	return c
}

// WithPresence returns a copy of c that only routes between present cells.
func (c Config) WithPresence(present *bitset.BitSet) Config {
	c.Present = present
	return c
}

func (c Config) present(node int) bool {
	return c.Present == nil || c.Present.Test(uint(node))
}

// Options configures a Router.
type Options struct {
	Heuristic      pathcost.Heuristic
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider // nil selects the global provider
}

// Option represents a functional option for New.
type Option func(*Options)

// WithHeuristic selects the distance estimate. Default: pathcost.Manhattan,
// which overestimates diagonal steps; prefer pathcost.Octile on octilinear
// lattices.
func WithHeuristic(h pathcost.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithLogger sets the logger for search diagnostics. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// DefaultOptions returns Manhattan estimates with the default logger and the
// global tracer provider.
func DefaultOptions() Options {
	return Options{
		Heuristic: pathcost.Manhattan,
		Logger:    slog.Default(),
	}
}

// Result is the outcome of a search.
//
// Path lists the route from source to target inclusive; Cost is its number
// of steps and Turns its number of direction changes. Tape holds one Add per
// route cell in path order: Start, Route…, Target. A source that equals the
// target yields a one-cell route tagged Start. Expanded counts closed states.
type Result struct {
	Path     []lattice.Vertex
	Cost     int
	Turns    int
	Expanded int
	Tape     []tape.Item[lattice.Vertex, Cell]
}

// Found reports whether a route was found.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

// Engine computes routes. Router is the A* implementation.
type Engine interface {
	Compute(ctx context.Context, cfg Config, source int) (*Result, error)
}
