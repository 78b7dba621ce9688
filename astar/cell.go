package astar

// CellKind classifies the content of a routing grid cell.
type CellKind uint8

const (
	// Obstacle is a blocked cell.
	Obstacle CellKind = iota
	// Boundary marks the edge of the routing area.
	Boundary
	// Start is the source terminal of a net.
	Start
	// Target is the sink terminal of a net.
	Target
	// Unresolved is a cell still waiting in the open set.
	Unresolved
	// Resolved is a cell whose cost is final.
	Resolved
	// Route is a cell on a committed route.
	Route
)

func (k CellKind) String() string {
	switch k {
	case Obstacle:
		return "obstacle"
	case Boundary:
		return "boundary"
	case Start:
		return "start"
	case Target:
		return "target"
	case Unresolved:
		return "unresolved"
	case Resolved:
		return "resolved"
	case Route:
		return "route"
	default:
		return "unknown"
	}
}

// Cell is the payload the router writes for a grid cell. Net and Cost are
// only meaningful for the kinds reported by NetOf and CostOf.
type Cell struct {
	Kind CellKind
	Net  int
	Cost int
}

// NetOf returns the net the cell belongs to. Only terminals and route cells
// carry a net.
func (c Cell) NetOf() (int, bool) {
	switch c.Kind {
	case Start, Target, Route:
		return c.Net, true
	default:
		return 0, false
	}
}

// CostOf returns the path cost recorded for the cell: the distance from the
// source along the route, or the search cost for open and closed cells.
// Obstacles and boundaries carry none.
func (c Cell) CostOf() (int, bool) {
	switch c.Kind {
	case Obstacle, Boundary:
		return 0, false
	default:
		return c.Cost, true
	}
}
