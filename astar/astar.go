package astar

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// AStar searches for a cheapest path from start to goal.
//
// Validation order: nil graph, options, start/goal presence, negative
// weights. Once running, g is frozen. On success the Result carries the
// path and its cost; when the open list empties first the Result is
// returned with ErrNoPath after the done event.
func AStar(ctx context.Context, tr *step.Tracer, g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	goalNode, err := g.Node(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal %d", ErrVertexNotFound, goal)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	release := g.Freeze()
	defer release()

	s := &search{
		ctx:    ctx,
		tr:     tr,
		g:      g,
		goal:   goalNode,
		scale:  heuristicScale(g, cfg.HeuristicScale),
		f:      make(map[int]float64),
		closed: make(map[int]bool),
		res: &Result{
			Start:  start,
			Goal:   goal,
			G:      make(map[int]int64),
			Parent: make(map[int]int),
		},
	}

	return s.run()
}

// heuristicScale returns the factor applied to Euclidean distance. On
// unweighted graphs every edge costs 1, so any positive scale becomes
// 1/longest edge: no hop covers more distance than that, and h never
// exceeds the number of hops left.
func heuristicScale(g *core.Graph, scale float64) float64 {
	if g.Weighted() || scale == 0 {
		return scale
	}
	var longest float64
	for _, e := range g.Edges() {
		a, _ := g.Node(e.From)
		b, _ := g.Node(e.To)
		longest = max(longest, core.Distance(a, b))
	}
	if longest == 0 {
		return 0
	}

	return 1 / longest
}

type search struct {
	ctx    context.Context
	tr     *step.Tracer
	g      *core.Graph
	goal   core.Node
	scale  float64
	open   []int
	f      map[int]float64
	closed map[int]bool
	res    *Result
}

func (s *search) h(id int) float64 {
	n, _ := s.g.Node(id)
	return s.scale * core.Distance(n, s.goal)
}

func (s *search) run() (*Result, error) {
	start := s.res.Start
	s.res.G[start] = 0
	s.f[start] = s.h(start)
	s.open = append(s.open, start)
	if err := s.emit(step.KindPush, start, nil, "open %d (f=%.1f)", start, s.f[start]); err != nil {
		return s.res, err
	}

	for len(s.open) > 0 {
		u := s.popLowest()
		s.closed[u] = true
		s.res.Closed = append(s.res.Closed, u)
		if err := s.emit(step.KindPop, u, nil, "pop %d (f=%.1f)", u, s.f[u]); err != nil {
			return s.res, err
		}
		if u == s.goal.ID {
			s.res.Path = s.path(u)
			s.res.Cost = s.res.G[u]
			return s.res, s.finish()
		}
		if err := s.emit(step.KindVisit, u, nil, "close %d", u); err != nil {
			return s.res, err
		}
		if err := s.expand(u); err != nil {
			return s.res, err
		}
	}

	if err := s.finish(); err != nil {
		return s.res, err
	}

	return s.res, fmt.Errorf("%w from %d to %d", ErrNoPath, s.res.Start, s.goal.ID)
}

// popLowest removes and returns the first open vertex with the lowest f.
func (s *search) popLowest() int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.f[s.open[i]] < s.f[s.open[best]] {
			best = i
		}
	}
	u := s.open[best]
	s.open = slices.Delete(s.open, best, best+1)

	return u
}

func (s *search) expand(u int) error {
	neighbors, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.To
		if s.closed[v] {
			continue
		}
		tentative := s.res.G[u] + s.g.Cost(e)
		old, known := s.res.G[v]
		if known && tentative >= old {
			if err = s.emit(step.KindCompare, u, &e, "g=%d via %d not better than %d", tentative, u, old); err != nil {
				return err
			}
			continue
		}

		s.res.G[v] = tentative
		s.res.Parent[v] = u
		s.f[v] = float64(tentative) + s.h(v)
		kind, note := step.KindRelax, "improve"
		if !known {
			s.open = append(s.open, v)
			kind, note = step.KindPush, "open"
		}
		if err = s.emit(kind, u, &e, "%s %d (g=%d, f=%.1f)", note, v, tentative, s.f[v]); err != nil {
			return err
		}
	}

	return nil
}

func (s *search) path(to int) []int {
	path := []int{to}
	for cur := to; cur != s.res.Start; {
		cur = s.res.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

func (s *search) emit(kind step.Kind, current int, edge *core.Edge, format string, args ...any) error {
	if s.tr == nil {
		return s.tr.Emit(s.ctx, step.Event{})
	}

	return s.tr.Emit(s.ctx, step.Event{
		Kind:  kind,
		Note:  fmt.Sprintf(format, args...),
		Graph: s.state(current, edge),
	})
}

func (s *search) finish() error {
	if s.tr == nil {
		return s.tr.Finish(s.ctx, step.Event{})
	}
	note := fmt.Sprintf("no path to %d", s.goal.ID)
	if s.res.Path != nil {
		note = fmt.Sprintf("path of cost %d", s.res.Cost)
	}

	return s.tr.Finish(s.ctx, step.Event{Note: note, Graph: s.state(step.None, nil)})
}

func (s *search) state(current int, edge *core.Edge) *step.GraphState {
	return &step.GraphState{
		Current:  current,
		Edge:     edge,
		Visited:  step.SortedKeys(s.closed),
		Frontier: s.open,
		Order:    s.res.Closed,
		Parent:   s.res.Parent,
		Dist:     s.res.G,
		Score:    s.f,
		Path:     s.res.Path,
	}
}
