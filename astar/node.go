package astar

import (
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
)

// PathNode is a search frontier entry at a grid position.
//
// CostTotal is CostFromStart+CostToTarget, or 0 while no estimate was made
// (see BasePathNode). OrientationCost counts the turns along the best known
// route to Position.
type PathNode struct {
	Position        lattice.Vertex
	CostFromStart   int
	CostToTarget    int
	HasEstimate     bool
	CostTotal       int
	OrientationCost int
}

// NewPathNode builds a node at from with g = costFromStart and the heuristic
// estimate towards to.
func NewPathNode(from lattice.Vertex, costFromStart int, to lattice.Vertex, h pathcost.Heuristic, orientationCost int) PathNode {
	return BasePathNode(from).
		WithStartCost(costFromStart).
		WithCostEstimation(to, h).
		WithOrientationCost(orientationCost)
}

// BasePathNode is a zero-cost node without an estimate.
func BasePathNode(from lattice.Vertex) PathNode {
	return PathNode{Position: from}
}

// WithStartCost sets g. An existing estimate is kept and CostTotal updated.
func (n PathNode) WithStartCost(cost int) PathNode {
	n.CostFromStart = cost
	if n.HasEstimate {
		n.CostTotal = n.CostFromStart + n.CostToTarget
	}
	return n
}

// WithCostEstimation sets h from the heuristic and recomputes CostTotal.
func (n PathNode) WithCostEstimation(to lattice.Vertex, h pathcost.Heuristic) PathNode {
	n.CostToTarget = h.Estimate(n.Position, to)
	n.HasEstimate = true
	n.CostTotal = n.CostFromStart + n.CostToTarget
	return n
}

// WithOrientationCost sets the accumulated turn count.
func (n PathNode) WithOrientationCost(turns int) PathNode {
	n.OrientationCost = turns
	return n
}

// Equal reports whether both nodes are at the same position. Costs are ignored.
func (n PathNode) Equal(other PathNode) bool {
	return n.Position == other.Position
}

// Compare orders nodes by CostTotal, then by OrientationCost.
// It returns -1, 0 or +1.
func (n PathNode) Compare(other PathNode) int {
	switch {
	case n.CostTotal < other.CostTotal:
		return -1
	case n.CostTotal > other.CostTotal:
		return 1
	case n.OrientationCost < other.OrientationCost:
		return -1
	case n.OrientationCost > other.OrientationCost:
		return 1
	default:
		return 0
	}
}

// Less reports whether n should be expanded before other.
func (n PathNode) Less(other PathNode) bool {
	return n.Compare(other) < 0
}
