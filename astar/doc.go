// Package astar routes a single net across a lattice snapshot with A*.
//
// What:
//
//   - Router.Compute searches a csr.Graph whose node i is the cell with
//     row-major index i of a Columns×Rows lattice.
//   - Every step costs 1; the heuristic comes from pathcost.
//   - Among candidates with equal g+h, the one with fewer direction changes
//     is expanded first, so equal-length routes prefer fewer turns.
//   - The route is returned as vertices and as a tape of Add records
//     (Start, Route…, Target) that a presentation layer can play and rewind.
//
// Search state:
//
// A state is a cell together with the orientation of the step that entered
// it. Keeping the orientation in the state makes the turn count exact: two
// routes reaching a cell from different directions are both kept, and the
// turn charged for the next step depends on the route actually taken.
// Each Compute call allocates its own runner; nothing is shared across calls.
//
// Optimality: with a heuristic that is consistent for the lattice (Manhattan
// or Zero on a 4-connected lattice; Octile, Chebyshev or Zero on an
// 8-connected one) the route has the minimum number of steps and, among
// those, the minimum number of turns. An overestimating heuristic (Manhattan
// on an 8-connected lattice) re-opens closed states that a later candidate
// beats, but the route may then be longer than the shortest one.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = 5×cells states, E ≤ 8 edges per state.
//   - Space: O(V) for the per-state arrays plus the heap (lazy decrease-key).
//
// Observability: each Compute opens a "Router.Compute" span and records
// astar_search_duration_seconds, astar_search_total{found} and
// astar_expanded_nodes. Diagnostics go to the configured slog.Logger at Debug.
//
// Errors (sentinel):
//
//   - ErrNilGraph          Config.Graph is nil.
//   - ErrBoundaryMismatch  Columns×Rows or Config.Present differs from the node count.
//   - ErrSourceOutOfRange  source index outside the graph.
//   - ErrTargetOutOfRange  target index at or beyond the node count.
//
// A missing target (NoTarget), an unreachable one, or an endpoint that
// Config.Present marks absent is not an error: the Result is empty.
package astar
