package sorting

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Func is the common signature of every sort in this package.
type Func func(ctx context.Context, tr *step.Tracer, a []int) error

// walker holds the mutable state of one sorting run.
type walker struct {
	ctx context.Context
	tr  *step.Tracer
	a   []int

	// lo..hi is the active sub-range, pivot the active pivot index.
	lo, hi, pivot int
	final         []int
	settled       []bool
}

func newWalker(ctx context.Context, tr *step.Tracer, a []int) *walker {
	return &walker{
		ctx:     ctx,
		tr:      tr,
		a:       a,
		lo:      step.None,
		hi:      step.None,
		pivot:   step.None,
		settled: make([]bool, len(a)),
	}
}

// emit publishes the current array with the given highlights.
func (w *walker) emit(kind step.Kind, compare, swap []int, write int, format string, args ...any) error {
	if w.tr == nil {
		return w.tr.Emit(w.ctx, step.Event{})
	}

	return w.tr.Emit(w.ctx, step.Event{
		Kind: kind,
		Note: fmt.Sprintf(format, args...),
		Sort: w.state(compare, swap, write),
	})
}

func (w *walker) state(compare, swap []int, write int) *step.SortState {
	return &step.SortState{
		Array:   w.a,
		Compare: compare,
		Swap:    swap,
		Pivot:   w.pivot,
		Lo:      w.lo,
		Hi:      w.hi,
		Write:   write,
		Final:   w.final,
	}
}

// compare emits a comparison of a[i] and a[j].
func (w *walker) compare(i, j int) error {
	return w.emit(step.KindCompare, []int{i, j}, nil, step.None, "compare a[%d]=%d with a[%d]=%d", i, w.a[i], j, w.a[j])
}

// swap exchanges a[i] and a[j] and emits the result.
func (w *walker) swap(i, j int) error {
	w.a[i], w.a[j] = w.a[j], w.a[i]

	return w.emit(step.KindSwap, nil, []int{i, j}, step.None, "swap a[%d] and a[%d]", i, j)
}

// write stores v at a[k] and emits the result.
func (w *walker) write(k, v int) error {
	w.a[k] = v

	return w.emit(step.KindWrite, nil, nil, k, "write %d to a[%d]", v, k)
}

// settle marks index i as holding its final value.
func (w *walker) settle(i int) {
	if i < 0 || i >= len(w.a) || w.settled[i] {
		return
	}
	w.settled[i] = true
	w.final = append(w.final, i)
}

// finish settles every index and emits the terminal event.
func (w *walker) finish() error {
	for i := range w.a {
		w.settle(i)
	}
	w.lo, w.hi, w.pivot = step.None, step.None, step.None
	if w.tr == nil {
		return w.tr.Finish(w.ctx, step.Event{})
	}

	return w.tr.Finish(w.ctx, step.Event{Note: "sorted", Sort: w.state(nil, nil, step.None)})
}

// run wraps a sorting body with the terminal event.
func run(ctx context.Context, tr *step.Tracer, a []int, body func(w *walker) error) error {
	w := newWalker(ctx, tr, a)
	if len(a) > 1 {
		if err := body(w); err != nil {
			return err
		}
	}

	return w.finish()
}
