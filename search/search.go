// Package search implements an animated binary search over a sorted sequence.
//
// Each iteration emits a probe event carrying low, high and mid. A hit
// emits a found event. The default search stops at the first index where
// equality is met; WithLeftmost keeps narrowing left and returns the
// lowest matching index. Unsorted input is rejected with ErrUnsorted.
package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/step"
)

// ErrUnsorted is returned when the input is not in non-decreasing order.
var ErrUnsorted = fmt.Errorf("search: input not sorted: %w", step.ErrInvalidInput)

// Option configures BinarySearch.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// Leftmost returns the lowest index holding the target.
	Leftmost bool
}

// WithLeftmost selects the lowest matching index among duplicates.
func WithLeftmost() Option {
	return func(o *Options) { o.Leftmost = true }
}

// BinarySearch returns the index of target in a, or step.None (−1) when
// absent. a must be sorted ascending.
func BinarySearch(ctx context.Context, tr *step.Tracer, a []int, target int, opts ...Option) (int, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if !slices.IsSorted(a) {
		return step.None, ErrUnsorted
	}

	st := &step.SearchState{
		Array:  a,
		Target: target,
		Low:    0,
		High:   len(a) - 1,
		Mid:    step.None,
		Found:  step.None,
	}
	emit := func(kind step.Kind, format string, args ...any) error {
		if tr == nil {
			return tr.Emit(ctx, step.Event{})
		}
		return tr.Emit(ctx, step.Event{Kind: kind, Note: fmt.Sprintf(format, args...), Search: st})
	}

	for st.Low <= st.High {
		st.Mid = (st.Low + st.High) / 2
		if err := emit(step.KindProbe, "probe a[%d]=%d in [%d,%d]", st.Mid, a[st.Mid], st.Low, st.High); err != nil {
			return st.Found, err
		}

		switch v := a[st.Mid]; {
		case v == target:
			st.Found = st.Mid
			if err := emit(step.KindFound, "found %d at %d", target, st.Mid); err != nil {
				return st.Found, err
			}
			if !o.Leftmost {
				return st.Found, finish(ctx, tr, st)
			}
			st.High = st.Mid - 1
		case v < target:
			st.Low = st.Mid + 1
		default:
			st.High = st.Mid - 1
		}
	}

	return st.Found, finish(ctx, tr, st)
}

func finish(ctx context.Context, tr *step.Tracer, st *step.SearchState) error {
	st.Mid = step.None
	note := "not found"
	if st.Found != step.None {
		note = fmt.Sprintf("index %d", st.Found)
	}
	if tr == nil {
		return tr.Finish(ctx, step.Event{})
	}

	return tr.Finish(ctx, step.Event{Note: note, Search: st})
}
