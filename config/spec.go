package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/step"
)

// ErrInvalid wraps every malformed scenario or request.
var ErrInvalid = fmt.Errorf("config: invalid input: %w", step.ErrInvalidInput)

// defaultSeed feeds random generators that were given no seed.
const defaultSeed = 1

// lineSpacing separates nodes placed without explicit points.
const lineSpacing = 10.0

// GraphSpec describes a graph explicitly (nodes, points, edges), as a
// seeded random connected graph, or as a grid of cells.
//
// Explicit edges are [u, v] or [u, v, w]. On a weighted graph a missing w is
// derived from the endpoint distance; on an unweighted graph w must be
// absent or zero. Without points, nodes are laid out on a horizontal line.
type GraphSpec struct {
	Name     string       `hcl:"name,label" json:"-"`
	Weighted bool         `hcl:"weighted,optional" json:"weighted,omitempty"`
	Nodes    int          `hcl:"nodes,optional" json:"nodes,omitempty"`
	Points   [][]float64  `hcl:"points,optional" json:"points,omitempty"`
	Edges    [][]int64    `hcl:"edges,optional" json:"edges,omitempty"`
	Random   *RandomGraph `hcl:"random,block" json:"random,omitempty"`
	Grid     *GridSpec    `hcl:"grid,block" json:"grid,omitempty"`
}

// GridSpec parameterises builder.Grid: cells ≥ 1 are passable, node ids
// follow the passable cells in row-major order.
type GridSpec struct {
	Cells    [][]int `hcl:"cells" json:"cells"`
	Diagonal bool    `hcl:"diagonal,optional" json:"diagonal,omitempty"`
}

// RandomGraph parameterises builder.RandomConnected.
type RandomGraph struct {
	Nodes  int      `hcl:"nodes" json:"nodes"`
	Extra  int      `hcl:"extra,optional" json:"extra,omitempty"`
	Seed   *int64   `hcl:"seed,optional" json:"seed,omitempty"`
	Width  *float64 `hcl:"width,optional" json:"width,omitempty"`
	Height *float64 `hcl:"height,optional" json:"height,omitempty"`
}

// Build constructs the graph.
func (s *GraphSpec) Build() (*core.Graph, error) {
	explicit := s.Nodes != 0 || len(s.Points) != 0 || len(s.Edges) != 0
	switch {
	case s.Random != nil && s.Grid != nil, explicit && (s.Random != nil || s.Grid != nil):
		return nil, fmt.Errorf("%w: graph %q mixes layouts", ErrInvalid, s.Name)
	case s.Random != nil:
		return s.Random.build(s.Weighted)
	case s.Grid != nil:
		return s.Grid.build(s.Weighted)
	}

	var opts []core.GraphOption
	if s.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	n := s.Nodes
	if len(s.Points) > 0 {
		if n != 0 && n != len(s.Points) {
			return nil, fmt.Errorf("%w: graph %q has nodes=%d but %d points", ErrInvalid, s.Name, n, len(s.Points))
		}
		n = len(s.Points)
	}
	for i := 0; i < n; i++ {
		x, y := float64(i)*lineSpacing, 0.0
		if len(s.Points) > 0 {
			p := s.Points[i]
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: graph %q point %d has %d coordinates", ErrInvalid, s.Name, i, len(p))
			}
			x, y = p[0], p[1]
		}
		if _, err := g.AddNode(x, y); err != nil {
			return nil, fmt.Errorf("config: graph %q: %w", s.Name, err)
		}
	}

	for i, e := range s.Edges {
		if err := s.addEdge(g, e); err != nil {
			return nil, fmt.Errorf("%w: graph %q edge %d: %w", ErrInvalid, s.Name, i, err)
		}
	}

	return g, nil
}

func (s *GraphSpec) addEdge(g *core.Graph, e []int64) error {
	if len(e) != 2 && len(e) != 3 {
		return fmt.Errorf("want [u, v] or [u, v, w], got %v", e)
	}
	u, v := int(e[0]), int(e[1])
	var w int64
	switch {
	case len(e) == 3:
		w = e[2]
	case s.Weighted:
		a, errA := g.Node(u)
		b, errB := g.Node(v)
		if err := errors.Join(errA, errB); err != nil {
			return err
		}
		w = builder.DistanceWeight(a, b)
	}

	return g.AddEdge(u, v, w)
}

func (r *RandomGraph) build(weighted bool) (*core.Graph, error) {
	opts := []builder.BuilderOption{builder.WithSeed(seedOr(r.Seed))}
	if weighted {
		opts = append(opts, builder.WithWeighted())
	}
	if r.Width != nil || r.Height != nil {
		if (r.Width != nil && *r.Width <= 0) || (r.Height != nil && *r.Height <= 0) {
			return nil, fmt.Errorf("%w: canvas sides must be positive", ErrInvalid)
		}
		w, h := 600.0, 400.0
		if r.Width != nil {
			w = *r.Width
		}
		if r.Height != nil {
			h = *r.Height
		}
		opts = append(opts, builder.WithCanvas(w, h))
	}
	g, err := builder.RandomConnected(r.Nodes, r.Extra, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return g, nil
}

func (gs *GridSpec) build(weighted bool) (*core.Graph, error) {
	var opts []builder.BuilderOption
	if weighted {
		opts = append(opts, builder.WithWeighted())
	}
	if gs.Diagonal {
		opts = append(opts, builder.WithDiagonal())
	}
	g, _, err := builder.Grid(gs.Cells, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return g, nil
}

// ArraySpec describes a seeded random input sequence. Unsorted sequences
// draw values in [0, max); sorted ones (for binary search) start at 0 and
// grow by gaps in [0, max].
type ArraySpec struct {
	Size   int    `hcl:"size" json:"size"`
	Max    int    `hcl:"max" json:"max"`
	Sorted bool   `hcl:"sorted,optional" json:"sorted,omitempty"`
	Seed   *int64 `hcl:"seed,optional" json:"seed,omitempty"`
}

// Build generates the sequence.
func (a *ArraySpec) Build() ([]int, error) {
	gen := builder.RandomSequence
	if a.Sorted {
		gen = builder.SortedSequence
	}
	out, err := gen(a.Size, a.Max, builder.WithSeed(seedOr(a.Seed)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return out, nil
}

func seedOr(seed *int64) int64 {
	if seed == nil {
		return defaultSeed
	}
	return *seed
}

// requestFields are the per-run inputs shared by scenario blocks and JSON
// requests.
type requestFields struct {
	Algorithm      string
	Array          []int
	RandomArray    *ArraySpec
	Target         *int
	Leftmost       bool
	Start          int
	Goal           *int
	HeuristicScale *float64
	Text           string
	Pattern        string
	Overlapping    bool
	Speed          *int
}

// request resolves f into a validated runner.Request on graph g.
func (f requestFields) request(g *core.Graph, defaultSpeed int) (runner.Request, error) {
	alg, err := runner.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return runner.Request{}, err
	}
	req := runner.Request{
		Algorithm:      alg,
		Array:          f.Array,
		Leftmost:       f.Leftmost,
		Graph:          g,
		Start:          f.Start,
		Goal:           f.Goal,
		HeuristicScale: f.HeuristicScale,
		Text:           f.Text,
		Pattern:        f.Pattern,
		Overlapping:    f.Overlapping,
		Speed:          defaultSpeed,
	}
	if f.Speed != nil {
		req.Speed = *f.Speed
	}
	if f.RandomArray != nil {
		if len(f.Array) > 0 {
			return runner.Request{}, fmt.Errorf("%w: both array and random_array given", ErrInvalid)
		}
		if req.Array, err = f.RandomArray.Build(); err != nil {
			return runner.Request{}, err
		}
	}
	if f.Target != nil {
		req.Target = *f.Target
	}
	if err = req.Validate(); err != nil {
		return runner.Request{}, err
	}

	return req, nil
}
