// Package pathcost holds the cost model shared by grid routers: distance
// heuristics between lattice vertices and the turn (orientation) cost used to
// break ties between equal-length routes.
//
// What:
//
//   - Heuristic estimates the remaining distance between two vertices.
//   - Orientation classifies a single step; TurnCost charges 1 whenever two
//     consecutive steps differ in orientation.
//
// Heuristics:
//
//	Manhattan  |Δc| + |Δr|
//	Euclidean  Δc² + Δr²        squared, no root is taken
//	Octile     max(|Δc|, |Δr|)
//	Chebyshev  max(|Δc|, |Δr|)  currently identical to Octile
//	Zero       0                turns A* into uniform-cost search
//
// Euclidean and Octile are kept exactly as routers have always computed them
// and are pinned by tests, so correcting either is a one-line, reviewable
// change in Estimate.
//
// Admissibility on unit-cost grids: Manhattan and Zero are consistent on a
// 4-connected lattice; Octile, Chebyshev and Zero on an 8-connected one.
// Squared Euclidean overestimates beyond distance 1 and yields shorter
// searches but not guaranteed-shortest routes.
//
// Errors:
//
//   - ErrUnknownHeuristic from ParseHeuristic.
package pathcost
