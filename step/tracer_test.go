package step_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/step"
)

// recorder collects events and the delays requested from the sleeper.
type recorder struct {
	mu     sync.Mutex
	events []step.Event
	delays []time.Duration
}

func (r *recorder) handle(ev step.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)

	return nil
}

func (r *recorder) sleeper() step.Sleeper {
	return step.SleeperFunc(func(ctx context.Context, d time.Duration) error {
		r.mu.Lock()
		r.delays = append(r.delays, d)
		r.mu.Unlock()

		return ctx.Err()
	})
}

func TestNew_InvalidSpeed(t *testing.T) {
	for _, s := range []int{0, -3, 101, 1000} {
		_, err := step.New(step.WithSpeed(s))
		require.Error(t, err)
		assert.ErrorIs(t, err, step.ErrInvalidSpeed)
		assert.ErrorIs(t, err, step.ErrInvalidInput)
	}
	_, err := step.New(step.WithUnit(0))
	assert.ErrorIs(t, err, step.ErrInvalidInput)
}

func TestDelayFormula(t *testing.T) {
	cases := map[int]time.Duration{
		1:   100 * 10 * time.Millisecond,
		50:  51 * 10 * time.Millisecond,
		100: 10 * time.Millisecond,
	}
	for speed, want := range cases {
		tr, err := step.New(step.WithSpeed(speed))
		require.NoError(t, err)
		assert.Equal(t, want, tr.Delay(), "speed %d", speed)
	}

	tr := step.MustNew()
	assert.Equal(t, step.DefaultSpeed, tr.Speed())
	assert.Equal(t, 51*step.DefaultUnit, tr.Delay())
}

func TestDelayMonotone(t *testing.T) {
	prev := step.DelayFor(step.MinSpeed, time.Millisecond)
	for s := step.MinSpeed + 1; s <= step.MaxSpeed; s++ {
		d := step.DelayFor(s, time.Millisecond)
		assert.Less(t, d, prev)
		prev = d
	}
}

func TestEmit_NumbersAndStamps(t *testing.T) {
	rec := &recorder{}
	tr := step.MustNew(
		step.WithHandler(rec.handle),
		step.WithSleeper(rec.sleeper()),
		step.WithSpeed(90),
		step.WithUnit(time.Millisecond),
		step.WithRunID("run-1"),
	)
	ctx := context.Background()

	require.NoError(t, tr.Emit(ctx, step.Event{Kind: step.KindCompare}))
	require.NoError(t, tr.Emit(ctx, step.Event{Kind: step.KindSwap}))
	require.NoError(t, tr.Finish(ctx, step.Event{}))

	require.Len(t, rec.events, 3)
	for i, ev := range rec.events {
		assert.Equal(t, i+1, ev.Seq)
		assert.Equal(t, "run-1", ev.RunID)
	}
	assert.Equal(t, step.KindDone, rec.events[2].Kind)
	assert.Equal(t, 3, tr.Steps())
	// Finish does not suspend.
	assert.Equal(t, []time.Duration{11 * time.Millisecond, 11 * time.Millisecond}, rec.delays)
}

func TestEmit_SnapshotIsolation(t *testing.T) {
	rec := &recorder{}
	tr := step.MustNew(step.WithHandler(rec.handle), step.WithoutDelay())

	arr := []int{3, 1, 2}
	require.NoError(t, tr.Emit(context.Background(), step.Event{
		Kind: step.KindCompare,
		Sort: &step.SortState{Array: arr, Compare: []int{0, 1}},
	}))
	arr[0] = 99

	require.Len(t, rec.events, 1)
	assert.Equal(t, []int{3, 1, 2}, rec.events[0].Sort.Array)
}

func TestEmit_NilTracer(t *testing.T) {
	var tr *step.Tracer
	assert.NoError(t, tr.Emit(context.Background(), step.Event{Kind: step.KindVisit}))
	assert.NoError(t, tr.Finish(context.Background(), step.Event{}))
	assert.Equal(t, 0, tr.Steps())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Emit(ctx, step.Event{}), step.ErrCancelled)
}

func TestEmit_NilContext(t *testing.T) {
	var ctx context.Context
	for _, opt := range []step.Option{step.WithoutDelay(), step.WithUnit(time.Microsecond)} {
		rec := &recorder{}
		tr, err := step.New(opt, step.WithHandler(rec.handle), step.WithController(step.NewController()))
		require.NoError(t, err)

		require.NotPanics(t, func() {
			assert.NoError(t, tr.Emit(ctx, step.Event{Kind: step.KindVisit}))
			assert.NoError(t, tr.Finish(ctx, step.Event{}))
		})
		assert.Len(t, rec.events, 2)
	}
}

func TestEmit_CancelBeforeSuppressesEvent(t *testing.T) {
	rec := &recorder{}
	tr := step.MustNew(
		step.WithHandler(rec.handle),
		step.WithoutDelay(),
		step.WithCancel(func() bool { return true }),
	)

	err := tr.Emit(context.Background(), step.Event{Kind: step.KindVisit})
	assert.ErrorIs(t, err, step.ErrCancelled)
	assert.Empty(t, rec.events)
}

func TestEmit_CancelDuringSuspension(t *testing.T) {
	var cancelled bool
	rec := &recorder{}
	tr := step.MustNew(
		step.WithHandler(rec.handle),
		step.WithSleeper(step.SleeperFunc(func(context.Context, time.Duration) error {
			cancelled = true
			return nil
		})),
		step.WithCancel(func() bool { return cancelled }),
	)

	err := tr.Emit(context.Background(), step.Event{Kind: step.KindVisit})
	assert.ErrorIs(t, err, step.ErrCancelled)
	assert.Len(t, rec.events, 1)

	err = tr.Emit(context.Background(), step.Event{Kind: step.KindVisit})
	assert.ErrorIs(t, err, step.ErrCancelled)
	assert.Len(t, rec.events, 1, "no event after cancellation")
}

func TestEmit_ContextCancelInterruptsSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := step.MustNew(step.WithSpeed(1), step.WithUnit(time.Hour))

	done := make(chan error, 1)
	go func() { done <- tr.Emit(ctx, step.Event{Kind: step.KindVisit}) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, step.ErrCancelled)
	case <-time.After(5 * time.Second):
		t.Fatal("emit did not return after cancellation")
	}
}

func TestEmit_HandlerError(t *testing.T) {
	boom := errors.New("boom")
	tr := step.MustNew(step.WithoutDelay(), step.WithHandler(func(step.Event) error { return boom }))
	err := tr.Emit(context.Background(), step.Event{Kind: step.KindSwap})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, step.ErrCancelled)

	tr = step.MustNew(step.WithoutDelay(), step.WithHandler(func(step.Event) error { return step.ErrCancelled }))
	assert.ErrorIs(t, tr.Emit(context.Background(), step.Event{}), step.ErrCancelled)
}

func TestController_PauseResume(t *testing.T) {
	c := step.NewController()
	rec := &recorder{}
	tr := step.MustNew(step.WithHandler(rec.handle), step.WithoutDelay(), step.WithController(c))

	c.Pause()
	assert.True(t, c.Paused())

	done := make(chan error, 1)
	go func() { done <- tr.Emit(context.Background(), step.Event{Kind: step.KindVisit}) }()

	select {
	case <-done:
		t.Fatal("emit returned while paused")
	case <-time.After(50 * time.Millisecond):
	}

	c.Resume()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("emit did not resume")
	}
	assert.False(t, c.Paused())
}

func TestController_CancelWhilePaused(t *testing.T) {
	c := step.NewController()
	tr := step.MustNew(step.WithoutDelay(), step.WithController(c))
	c.Pause()

	done := make(chan error, 1)
	go func() { done <- tr.Emit(context.Background(), step.Event{Kind: step.KindVisit}) }()
	c.Cancel()
	c.Cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, step.ErrCancelled)
	case <-time.After(5 * time.Second):
		t.Fatal("cancel did not release paused emit")
	}
	assert.True(t, c.Cancelled())
}

func TestController_SetSpeed(t *testing.T) {
	c := step.NewController()
	tr := step.MustNew(step.WithController(c), step.WithUnit(time.Millisecond))
	assert.Equal(t, 51*time.Millisecond, tr.Delay())

	require.NoError(t, c.SetSpeed(100))
	assert.Equal(t, time.Millisecond, tr.Delay())
	assert.ErrorIs(t, c.SetSpeed(0), step.ErrInvalidSpeed)
	assert.Equal(t, 100, tr.Speed())
}

func TestController_Bind(t *testing.T) {
	c := step.NewController()
	ctx, stop := c.Bind(context.Background())
	defer stop()

	c.Cancel()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("bound context not cancelled")
	}
}

func TestRealSleeper(t *testing.T) {
	assert.NoError(t, step.RealSleeper{}.Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, step.RealSleeper{}.Sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, step.RealSleeper{}.Sleep(ctx, time.Hour))
	assert.Error(t, step.NoDelay{}.Sleep(ctx, time.Hour))
}

func TestEventClone_Deep(t *testing.T) {
	ev := step.Event{
		Kind: step.KindRelax,
		Graph: &step.GraphState{
			Visited: []int{0},
			Dist:    map[int]int64{0: 0, 1: 5},
			Parent:  map[int]int{1: 0},
		},
	}
	cp := ev.Clone()
	ev.Graph.Visited[0] = 7
	ev.Graph.Dist[1] = 42
	ev.Graph.Parent[1] = 9

	assert.Equal(t, []int{0}, cp.Graph.Visited)
	assert.Equal(t, int64(5), cp.Graph.Dist[1])
	assert.Equal(t, 0, cp.Graph.Parent[1])
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, step.SortedKeys(map[int]bool{5: true, 1: true, 3: true, 4: false}))
	assert.Empty(t, step.SortedKeys(nil))
}
