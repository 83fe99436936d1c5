package sorting

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// HeapSort builds a max-heap bottom-up, then repeatedly swaps the root
// with the last unsorted element and sifts the new root down.
func HeapSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		n := len(a)
		w.lo, w.hi = 0, n-1
		for i := n/2 - 1; i >= 0; i-- {
			if err := w.siftDown(i, n); err != nil {
				return err
			}
		}
		for end := n - 1; end > 0; end-- {
			if err := w.swap(0, end); err != nil {
				return err
			}
			w.settle(end)
			w.hi = end - 1
			if err := w.siftDown(0, end); err != nil {
				return err
			}
		}

		return nil
	})
}

// siftDown restores the heap property below i within a[:n].
// The right child only wins with a strictly larger value.
func (w *walker) siftDown(i, n int) error {
	for {
		largest := i
		if l := 2*i + 1; l < n {
			if err := w.compare(l, largest); err != nil {
				return err
			}
			if w.a[l] > w.a[largest] {
				largest = l
			}
		}
		if r := 2*i + 2; r < n {
			if err := w.compare(r, largest); err != nil {
				return err
			}
			if w.a[r] > w.a[largest] {
				largest = r
			}
		}
		if largest == i {
			return nil
		}
		if err := w.swap(i, largest); err != nil {
			return err
		}
		i = largest
	}
}
