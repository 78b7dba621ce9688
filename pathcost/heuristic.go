package pathcost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridroute/lattice"
)

// ErrUnknownHeuristic indicates a heuristic name that ParseHeuristic does not recognise.
var ErrUnknownHeuristic = errors.New("pathcost: unknown heuristic")

// Heuristic selects a distance estimate between two lattice vertices.
type Heuristic int

const (
	// Manhattan is |Δc| + |Δr|.
	Manhattan Heuristic = iota
	// Euclidean is Δc² + Δr², without the square root.
	Euclidean
	// Octile is max(|Δc|, |Δr|).
	Octile
	// Chebyshev is max(|Δc|, |Δr|).
	Chebyshev
	// Zero always estimates 0.
	Zero
)

var heuristicNames = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Octile:    "octile",
	Chebyshev: "chebyshev",
	Zero:      "zero",
}

// Estimate returns the heuristic distance from one vertex to another.
// Complexity: O(1).
func (h Heuristic) Estimate(from, to lattice.Vertex) int {
	dc := absInt(from.Col - to.Col)
	dr := absInt(from.Row - to.Row)

	switch h {
	case Manhattan:
		return dc + dr
	case Euclidean:
		// Squared distance; see the package doc.
		return dc*dc + dr*dr
	case Octile, Chebyshev:
		// Octile should add (√2-1)·min(dc,dr); both are max today.
		return max(dc, dr)
	default:
		return 0
	}
}

// String returns the lower-case name accepted by ParseHeuristic.
func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// ParseHeuristic resolves a case-insensitive heuristic name.
func ParseHeuristic(name string) (Heuristic, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for h, n := range heuristicNames {
		if n == want {
			return Heuristic(h), nil
		}
	}

	return Manhattan, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Heuristics lists every supported heuristic in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Euclidean, Octile, Chebyshev, Zero}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
