// Package problem loads routing problems from YAML: a lattice description
// plus the nets to route across it.
//
// Example file:
//
//	columns: 6
//	rows: 4
//	diagonal: false
//	heuristic: manhattan
//	mask: |
//	  ......
//	  ..#...
//	  ..#...
//	  ......
//	walls:
//	  - {from: {col: 4, row: 0}, to: {col: 5, row: 1}}
//	routes:
//	  - {net: 1, source: {col: 0, row: 0}, target: {col: 5, row: 3}}
//
// Edits are applied in a fixed order: fill, mask, open, obstacles, walls,
// then the border.
package problem

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/csr"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/pathcost"
)

// ErrInvalidProblem wraps every validation failure.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Mask glyphs.
const (
	maskOpen    = '.'
	maskBlocked = '#'
)

// Point is a lattice coordinate.
type Point struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Vertex converts p to a lattice vertex.
func (p Point) Vertex() lattice.Vertex { return lattice.Vertex{Col: p.Col, Row: p.Row} }

// Rect is an inclusive rectangle.
type Rect struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Net is one connection to route.
type Net struct {
	Net    int   `yaml:"net"`
	Source Point `yaml:"source"`
	Target Point `yaml:"target"`
}

// Problem is a routing problem.
type Problem struct {
	// Columns and Rows set the lattice extent.
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	// Diagonal selects octilinear connectivity.
	Diagonal bool `yaml:"diagonal"`

	// Fill starts from a full lattice instead of an empty one.
	Fill bool `yaml:"fill"`

	// Mask is one line per row, '.' for a present cell and '#' for an absent one.
	Mask string `yaml:"mask"`

	// Open areas are added; Obstacles areas and Walls perimeters are removed.
	Open      []Rect `yaml:"open"`
	Obstacles []Rect `yaml:"obstacles"`
	Walls     []Rect `yaml:"walls"`

	// BlockBorder removes the outermost ring.
	BlockBorder bool `yaml:"block_border"`

	// Heuristic names a pathcost heuristic. Empty selects octile on an
	// octilinear lattice and manhattan otherwise.
	Heuristic string `yaml:"heuristic"`

	Routes []Net `yaml:"routes"`
}

// DefaultProblem returns an empty, filled 8×8 rectilinear problem. Its
// heuristic follows the connectivity, see HeuristicValue.
func DefaultProblem() Problem {
	return Problem{
		Columns: 8,
		Rows:    8,
		Fill:    true,
	}
}

// Parse decodes a YAML problem over DefaultProblem and validates it. Parse
// only looks at data; environment overrides are applied by Load.
func Parse(data []byte) (Problem, error) {
	p := DefaultProblem()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

// Load reads a problem file, applies environment overrides and validates it.
//
// Environment:
//   - GRIDROUTE_HEURISTIC overrides heuristic.
//   - GRIDROUTE_DIAGONAL ("true" or "1") overrides diagonal.
func Load(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultProblem(), fmt.Errorf("load problem: %w", err)
	}
	p := DefaultProblem()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse problem %s: %w", path, err)
	}
	loadFromEnv(&p)
	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

func loadFromEnv(p *Problem) {
	if v := os.Getenv("GRIDROUTE_HEURISTIC"); v != "" {
		p.Heuristic = v
	}
	if v := os.Getenv("GRIDROUTE_DIAGONAL"); v != "" {
		p.Diagonal = v == "true" || v == "1"
	}
}

// Validate checks extents, rectangles, the mask and route endpoints.
func (p Problem) Validate() error {
	if p.Columns < 1 || p.Rows < 1 {
		return fmt.Errorf("%w: columns and rows must be >= 1, got %d×%d", ErrInvalidProblem, p.Columns, p.Rows)
	}
	if p.Heuristic != "" {
		if _, err := pathcost.ParseHeuristic(p.Heuristic); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
		}
	}
	if _, err := p.maskBits(); err != nil {
		return err
	}
	groups := []struct {
		name  string
		rects []Rect
	}{{"open", p.Open}, {"obstacles", p.Obstacles}, {"walls", p.Walls}}
	for _, grp := range groups {
		for i, r := range grp.rects {
			if !p.inside(r.From) || !p.inside(r.To) || r.From.Col > r.To.Col || r.From.Row > r.To.Row {
				return fmt.Errorf("%w: %s[%d] %v..%v is not a rectangle inside the lattice",
					ErrInvalidProblem, grp.name, i, r.From.Vertex(), r.To.Vertex())
			}
		}
	}
	for i, n := range p.Routes {
		if !p.inside(n.Source) || !p.inside(n.Target) {
			return fmt.Errorf("%w: routes[%d] endpoint outside the lattice", ErrInvalidProblem, i)
		}
	}

	return nil
}

func (p Problem) inside(pt Point) bool {
	return pt.Col >= 0 && pt.Col < p.Columns && pt.Row >= 0 && pt.Row < p.Rows
}

// maskBits returns the row-major present and absent bits of the mask, or
// nil bitsets when no mask is set.
func (p Problem) maskBits() ([2]*bitset.BitSet, error) {
	var out [2]*bitset.BitSet
	text := strings.TrimSpace(p.Mask)
	if text == "" {
		return out, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) != p.Rows {
		return out, fmt.Errorf("%w: mask has %d rows, want %d", ErrInvalidProblem, len(lines), p.Rows)
	}
	size := uint(p.Columns * p.Rows)
	present, absent := bitset.New(size), bitset.New(size)
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != p.Columns {
			return out, fmt.Errorf("%w: mask row %d has %d cells, want %d", ErrInvalidProblem, row, len(line), p.Columns)
		}
		for col := 0; col < len(line); col++ {
			i := uint(row*p.Columns + col)
			switch line[col] {
			case maskOpen:
				present.Set(i)
			case maskBlocked:
				absent.Set(i)
			default:
				return out, fmt.Errorf("%w: mask row %d has unknown cell %q", ErrInvalidProblem, row, line[col])
			}
		}
	}
	out[0], out[1] = present, absent

	return out, nil
}

// HeuristicValue returns the named heuristic. Without a name it returns
// Octile for octilinear lattices, where Manhattan overestimates diagonal
// steps, and Manhattan otherwise.
func (p Problem) HeuristicValue() pathcost.Heuristic {
	if p.Heuristic == "" {
		if p.Diagonal {
			return pathcost.Octile
		}
		return pathcost.Manhattan
	}
	h, err := pathcost.ParseHeuristic(p.Heuristic)
	if err != nil {
		return pathcost.Manhattan
	}
	return h
}

// Lattice builds the lattice described by p. p must be valid.
func (p Problem) Lattice() *lattice.Lattice2D {
	var opts []lattice.Option
	if p.Diagonal {
		opts = append(opts, lattice.WithDiagonal())
	}
	l := lattice.New(p.Columns, p.Rows, opts...)
	if p.Fill {
		l.Fill()
	}
	if bits, err := p.maskBits(); err == nil && bits[0] != nil {
		l.AddVertexVector(bits[0])
		l.RemoveVertexVector(bits[1])
	}
	for _, r := range p.Open {
		l.AddVertexArea(r.From.Vertex(), r.To.Vertex())
	}
	for _, r := range p.Obstacles {
		l.RemoveVertexArea(r.From.Vertex(), r.To.Vertex())
	}
	for _, r := range p.Walls {
		l.RemoveVertexPerimeter(r.From.Vertex(), r.To.Vertex())
	}
	if p.BlockBorder {
		l.RemoveBorder()
	}

	return l
}

// Requests builds one search per route over g, a snapshot of l.
func (p Problem) Requests(l *lattice.Lattice2D, g *csr.Graph) []astar.Request {
	reqs := make([]astar.Request, 0, len(p.Routes))
	present := l.AsBitSet()
	for _, n := range p.Routes {
		cfg := astar.NewConfig(g, l.Columns(), l.Rows()).
			WithTarget(l.ToVertexIndex(n.Target.Col, n.Target.Row)).
			WithNet(n.Net).
			WithPresence(present)
		reqs = append(reqs, astar.Request{
			Config: cfg,
			Source: l.ToVertexIndex(n.Source.Col, n.Source.Row),
		})
	}

	return reqs
}
