// Package steptest holds helpers shared by the algorithm tests: an event
// recorder, non-sleeping tracers and small graph fixtures.
package steptest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Recorder collects events in emission order.
type Recorder struct {
	mu     sync.Mutex
	events []step.Event
}

// Handle is a step.Handler.
func (r *Recorder) Handle(ev step.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)

	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []step.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]step.Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded events.
func (r *Recorder) Kinds() []step.Kind {
	evs := r.Events()
	out := make([]step.Kind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}

	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k step.Kind) int {
	n := 0
	for _, ev := range r.Events() {
		if ev.Kind == k {
			n++
		}
	}

	return n
}

// Last returns the last recorded event.
func (r *Recorder) Last(t *testing.T) step.Event {
	t.Helper()
	evs := r.Events()
	require.NotEmpty(t, evs)

	return evs[len(evs)-1]
}

// Tracer returns a non-sleeping tracer feeding a fresh Recorder.
func Tracer(t *testing.T, opts ...step.Option) (*step.Tracer, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	all := append([]step.Option{step.WithoutDelay(), step.WithHandler(rec.Handle)}, opts...)
	tr, err := step.New(all...)
	require.NoError(t, err)

	return tr, rec
}

// CancelAfter returns a tracer that reports cancellation once n events
// have been emitted.
func CancelAfter(t *testing.T, n int) (*step.Tracer, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	tr, err := step.New(
		step.WithoutDelay(),
		step.WithHandler(rec.Handle),
		step.WithCancel(func() bool { return len(rec.Events()) >= n }),
	)
	require.NoError(t, err)

	return tr, rec
}

// Graph builds a graph with n nodes laid out on a line and the given
// {u, v, w} edges in order. Weights are ignored when weighted is false.
func Graph(t testing.TB, weighted bool, n int, edges ...[3]int) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddNode(float64(i*10), 0)
		require.NoError(t, err)
	}
	for _, e := range edges {
		var w int64
		if weighted {
			w = int64(e[2])
		}
		require.NoError(t, g.AddEdge(e[0], e[1], w))
	}

	return g
}
