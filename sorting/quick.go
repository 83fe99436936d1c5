package sorting

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// QuickSort sorts a with Lomuto partitioning around the last element.
func QuickSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		return w.quick(0, len(a)-1, false)
	})
}

// QuickSortMedian3 sorts a like QuickSort but first moves the median of
// a[lo], a[mid], a[hi] to hi, which avoids the quadratic case on sorted input.
func QuickSortMedian3(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		return w.quick(0, len(a)-1, true)
	})
}

func (w *walker) quick(lo, hi int, median bool) error {
	if lo > hi {
		return nil
	}
	if lo == hi {
		w.settle(lo)
		return nil
	}
	if median && hi-lo >= 2 {
		if err := w.medianToHi(lo, hi); err != nil {
			return err
		}
	}

	p, err := w.partition(lo, hi)
	if err != nil {
		return err
	}
	w.settle(p)

	if err = w.quick(lo, p-1, median); err != nil {
		return err
	}

	return w.quick(p+1, hi, median)
}

// partition places a[hi] at its sorted position and returns that index.
func (w *walker) partition(lo, hi int) (int, error) {
	w.lo, w.hi, w.pivot = lo, hi, hi
	pivot := w.a[hi]
	if err := w.emit(step.KindPivot, nil, nil, step.None, "pivot a[%d]=%d on [%d,%d]", hi, pivot, lo, hi); err != nil {
		return 0, err
	}

	i := lo
	for j := lo; j < hi; j++ {
		if err := w.compare(j, hi); err != nil {
			return 0, err
		}
		if w.a[j] <= pivot {
			if i != j {
				if err := w.swap(i, j); err != nil {
					return 0, err
				}
			}
			i++
		}
	}
	if i != hi {
		w.pivot = i
		if err := w.swap(i, hi); err != nil {
			return 0, err
		}
	}
	w.pivot = step.None

	return i, nil
}

// medianToHi moves the median of a[lo], a[mid], a[hi] to hi.
func (w *walker) medianToHi(lo, hi int) error {
	mid := lo + (hi-lo)/2
	w.lo, w.hi = lo, hi

	// Three comparisons identify the median index m.
	if err := w.compare(lo, mid); err != nil {
		return err
	}
	if err := w.compare(mid, hi); err != nil {
		return err
	}
	if err := w.compare(lo, hi); err != nil {
		return err
	}
	x, y, z := w.a[lo], w.a[mid], w.a[hi]
	m := hi
	switch {
	case (x <= y && y <= z) || (z <= y && y <= x):
		m = mid
	case (y <= x && x <= z) || (z <= x && x <= y):
		m = lo
	}
	if m == hi {
		return nil
	}

	return w.swap(m, hi)
}
