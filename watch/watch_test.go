package watch_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/internal/steptest"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/watch"
)

// Bubble sort of [3 2 1] emits compare/swap pairs at seq 1..6 (swaps at 2,
// 4 and 6, on indices {0,1}, {1,2}, {0,1}) and done at seq 7.
func bubbleEvents(t *testing.T) []step.Event {
	t.Helper()
	tr, rec := steptest.Tracer(t)
	require.NoError(t, sorting.BubbleSort(context.Background(), tr, []int{3, 2, 1}))
	require.Len(t, rec.Events(), 7)

	return rec.Events()
}

func matching(t *testing.T, cond watch.Condition, evs []step.Event) []int {
	t.Helper()
	var seqs []int
	for _, ev := range evs {
		ok, err := cond.Match(ev)
		require.NoError(t, err, cond.String())
		if ok {
			seqs = append(seqs, ev.Seq)
		}
	}

	return seqs
}

func TestEventData(t *testing.T) {
	evs := bubbleEvents(t)
	data, err := watch.EventData(evs[1])
	require.NoError(t, err)

	assert.Equal(t, "swap", data["kind"])
	assert.Equal(t, float64(2), data["seq"])
	assert.Equal(t, map[string]any{}, data["graph"])
	assert.Equal(t, map[string]any{}, data["text"])
	sort, ok := data["sort"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{float64(0), float64(1)}, sort["swap"])
}

func TestConditions(t *testing.T) {
	evs := bubbleEvents(t)
	cases := []struct {
		dialect watch.Dialect
		src     string
		want    []int
	}{
		{watch.DialectExpr, `kind == "swap"`, []int{2, 4, 6}},
		{watch.DialectExpr, `kind == "swap" && sort.swap[0] == 1`, []int{4}},
		{watch.DialectExpr, `seq >= 6`, []int{6, 7}},
		{watch.DialectExpr, `graph.current == 3`, nil},
		{watch.DialectExpr, `kind == "done" && len(sort.final) == 3`, []int{7}},
		{watch.DialectCEL, `kind == "swap"`, []int{2, 4, 6}},
		{watch.DialectCEL, `kind == "swap" && sort.swap[1] == 2`, []int{4}},
		{watch.DialectCEL, `seq > 5`, []int{6, 7}},
		{watch.DialectCEL, `kind == "compare" && sort.array[0] > 2.5`, []int{1}},
		{"", `kind == "done"`, []int{7}},
	}
	for _, tc := range cases {
		cond, err := watch.Compile(tc.dialect, tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, matching(t, cond, evs), "%s %s", tc.dialect, tc.src)
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := watch.Compile(watch.DialectExpr, "")
	assert.ErrorIs(t, err, watch.ErrEmptyExpression)
	_, err = watch.Compile(watch.DialectCEL, "")
	assert.ErrorIs(t, err, watch.ErrEmptyExpression)
	_, err = watch.Compile("lua", "true")
	assert.Error(t, err)

	_, err = watch.Compile(watch.DialectExpr, `kind ==`)
	assert.Error(t, err)
	_, err = watch.Compile(watch.DialectCEL, `kind ==`)
	assert.Error(t, err)
	_, err = watch.Compile(watch.DialectCEL, `seq + 1`)
	assert.ErrorContains(t, err, "want bool")
	_, err = watch.Compile(watch.DialectCEL, `missing == 1`)
	assert.Error(t, err)
}

func TestCELMissingKeyIsError(t *testing.T) {
	evs := bubbleEvents(t)
	cond, err := watch.NewCELCondition(`graph.current == 3`)
	require.NoError(t, err)
	_, err = cond.Match(evs[0])
	assert.Error(t, err)
}

func TestUntil(t *testing.T) {
	cond, err := watch.NewExprCondition(`seq == 3`)
	require.NoError(t, err)
	rec := &steptest.Recorder{}
	tr, err := step.New(step.WithoutDelay(), step.WithHandler(watch.Until(cond, rec.Handle)))
	require.NoError(t, err)

	a := []int{3, 2, 1}
	err = sorting.BubbleSort(context.Background(), tr, a)
	assert.ErrorIs(t, err, step.ErrCancelled)
	assert.Len(t, rec.Events(), 3)
	assert.Equal(t, 3, tr.Steps())
	assert.Equal(t, []int{2, 3, 1}, a)
}

func TestUntil_DoneMatchCompletes(t *testing.T) {
	cond, err := watch.NewExprCondition(`kind == "done" && len(sort.final) == 3`)
	require.NoError(t, err)
	rec := &steptest.Recorder{}
	out, err := runner.Run(context.Background(), runner.Request{
		Algorithm: runner.BubbleSort,
		Array:     []int{3, 2, 1},
	}, watch.Until(cond, rec.Handle), step.WithoutDelay())
	require.NoError(t, err)
	assert.Equal(t, runner.StatusCompleted, out.Status)
	assert.Equal(t, 7, out.Steps)
	assert.Equal(t, step.KindDone, rec.Last(t).Kind)
}

func TestBreakpoint(t *testing.T) {
	cond, err := watch.NewCELCondition(`kind == "swap" && seq == 2`)
	require.NoError(t, err)
	ctrl := step.NewController()
	hits := make(chan step.Event, 1)
	rec := &steptest.Recorder{}
	handler := watch.Breakpoint(cond, ctrl, rec.Handle, func(ev step.Event) { hits <- ev })
	tr, err := step.New(step.WithoutDelay(), step.WithController(ctrl), step.WithHandler(handler))
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() { errc <- sorting.BubbleSort(context.Background(), tr, []int{3, 2, 1}) }()

	hit := <-hits
	assert.Equal(t, step.KindSwap, hit.Kind)
	assert.True(t, ctrl.Paused())
	assert.Never(t, func() bool { return len(rec.Events()) > 2 }, 50*time.Millisecond, 5*time.Millisecond)

	ctrl.Resume()
	require.NoError(t, <-errc)
	assert.Len(t, rec.Events(), 7)
}

func TestBreakpoint_MatchErrorAbortsRun(t *testing.T) {
	cond, err := watch.NewCELCondition(`graph.current == 3`)
	require.NoError(t, err)
	tr, err := step.New(step.WithoutDelay(), step.WithHandler(watch.Breakpoint(cond, step.NewController(), nil, nil)))
	require.NoError(t, err)

	err = sorting.BubbleSort(context.Background(), tr, []int{2, 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, step.ErrCancelled)
}

func TestProjector(t *testing.T) {
	p, err := watch.NewProjector(`select(.kind == "swap") | "\(.seq):\(.sort.swap | map(tostring) | join(","))"`)
	require.NoError(t, err)

	var got []any
	sink := func(ev step.Event, values []any) error {
		got = append(got, values...)
		return nil
	}
	tr, err := step.New(step.WithoutDelay(), step.WithHandler(watch.Project(context.Background(), p, sink)))
	require.NoError(t, err)
	require.NoError(t, sorting.BubbleSort(context.Background(), tr, []int{3, 2, 1}))

	assert.Equal(t, []any{"2:0,1", "4:1,2", "6:0,1"}, got)
}

func TestProjector_MultipleOutputs(t *testing.T) {
	evs := bubbleEvents(t)
	p, err := watch.NewProjector(`.sort.array[]`)
	require.NoError(t, err)
	out, err := p.Project(context.Background(), evs[len(evs)-1])
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, "[1 2 3]", fmt.Sprint(out))
}

func TestProjector_Errors(t *testing.T) {
	_, err := watch.NewProjector("")
	assert.ErrorIs(t, err, watch.ErrEmptyExpression)
	_, err = watch.NewProjector("{")
	assert.Error(t, err)

	p, err := watch.NewProjector(`error("boom")`)
	require.NoError(t, err)
	_, err = p.Project(context.Background(), bubbleEvents(t)[0])
	assert.ErrorContains(t, err, "boom")

	p, err = watch.NewProjector(`$ENV.HOME`)
	require.NoError(t, err)
	out, err := p.Project(context.Background(), bubbleEvents(t)[0])
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, out)
}
