package sorting

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// BubbleSort repeatedly swaps adjacent out-of-order pairs and stops early
// after a pass without swaps.
func BubbleSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		n := len(a)
		for i := 0; i < n-1; i++ {
			w.lo, w.hi = 0, n-1-i
			swapped := false
			for j := 0; j < n-1-i; j++ {
				if err := w.compare(j, j+1); err != nil {
					return err
				}
				if w.a[j] > w.a[j+1] {
					if err := w.swap(j, j+1); err != nil {
						return err
					}
					swapped = true
				}
			}
			w.settle(n - 1 - i)
			if !swapped {
				return nil
			}
		}

		return nil
	})
}

// SelectionSort moves the minimum of the unsorted suffix to its front.
func SelectionSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		n := len(a)
		for i := 0; i < n-1; i++ {
			w.lo, w.hi = i, n-1
			m := i
			for j := i + 1; j < n; j++ {
				if err := w.compare(j, m); err != nil {
					return err
				}
				if w.a[j] < w.a[m] {
					m = j
				}
			}
			if m != i {
				if err := w.swap(i, m); err != nil {
					return err
				}
			}
			w.settle(i)
		}

		return nil
	})
}

// InsertionSort grows a sorted prefix by sinking each new element into place.
func InsertionSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		for i := 1; i < len(a); i++ {
			w.lo, w.hi = 0, i
			for j := i; j > 0; j-- {
				if err := w.compare(j-1, j); err != nil {
					return err
				}
				if w.a[j-1] <= w.a[j] {
					break
				}
				if err := w.swap(j-1, j); err != nil {
					return err
				}
			}
		}

		return nil
	})
}
