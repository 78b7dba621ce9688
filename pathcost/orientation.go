package pathcost

import "github.com/katalvlaran/gridroute/lattice"

// Orientation classifies the direction of a single lattice step.
// Rows grow downwards, so Diag45 ('/') climbs to the right and Diag135 ('\')
// descends to the right.
type Orientation uint8

const (
	// OrientationNone marks the absence of a step, e.g. at the route source.
	OrientationNone Orientation = iota
	// Horizontal is a step along a row.
	Horizontal
	// Vertical is a step along a column.
	Vertical
	// Diag45 is a '/' step: column and row change in opposite directions.
	Diag45
	// Diag135 is a '\' step: column and row change in the same direction.
	Diag135
)

// NumOrientations is the number of Orientation values, OrientationNone included.
const NumOrientations = 5

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diag45:
		return "diag45"
	case Diag135:
		return "diag135"
	default:
		return "none"
	}
}

// OrientationOf classifies the step from one vertex to another.
// Equal vertices give OrientationNone. Vertices further apart are classified
// by the sign of their displacement.
func OrientationOf(from, to lattice.Vertex) Orientation {
	dc := to.Col - from.Col
	dr := to.Row - from.Row

	switch {
	case dc == 0 && dr == 0:
		return OrientationNone
	case dr == 0:
		return Horizontal
	case dc == 0:
		return Vertical
	case (dc < 0) != (dr < 0):
		return Diag45
	default:
		return Diag135
	}
}

// TurnCost is 1 when a step of orientation next follows a step of a
// different orientation prev, and 0 otherwise. Reversing along the same axis
// is not a turn.
func TurnCost(prev, next Orientation) int {
	if prev == OrientationNone || next == OrientationNone || prev == next {
		return 0
	}
	return 1
}

// CountTurns sums TurnCost along a route given as consecutive vertices.
func CountTurns(path []lattice.Vertex) int {
	turns := 0
	prev := OrientationNone
	for i := 1; i < len(path); i++ {
		next := OrientationOf(path[i-1], path[i])
		turns += TurnCost(prev, next)
		prev = next
	}

	return turns
}
