package sorting

import (
	"context"

	"github.com/katalvlaran/stepviz/step"
)

// MergeSort sorts a top-down: split at the midpoint, sort both halves,
// merge. The merge is stable.
func MergeSort(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		return w.mergeSort(0, len(a)-1)
	})
}

// MergeSortBottomUp merges runs of width 1, 2, 4, ... without recursion.
func MergeSortBottomUp(ctx context.Context, tr *step.Tracer, a []int) error {
	return run(ctx, tr, a, func(w *walker) error {
		n := len(a)
		for width := 1; width < n; width *= 2 {
			for lo := 0; lo < n-width; lo += 2 * width {
				hi := min(lo+2*width-1, n-1)
				if err := w.merge(lo, lo+width-1, hi); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (w *walker) mergeSort(lo, hi int) error {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	if err := w.mergeSort(lo, mid); err != nil {
		return err
	}
	if err := w.mergeSort(mid+1, hi); err != nil {
		return err
	}

	return w.merge(lo, mid, hi)
}

// merge combines the sorted runs a[lo..mid] and a[mid+1..hi].
// Compare events name the original positions of the two heads.
func (w *walker) merge(lo, mid, hi int) error {
	w.lo, w.hi = lo, hi
	left := append([]int(nil), w.a[lo:mid+1]...)
	right := append([]int(nil), w.a[mid+1:hi+1]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if err := w.emit(step.KindCompare, []int{lo + i, mid + 1 + j}, nil, step.None,
			"compare %d with %d", left[i], right[j]); err != nil {
			return err
		}
		var v int
		if left[i] <= right[j] {
			v = left[i]
			i++
		} else {
			v = right[j]
			j++
		}
		if err := w.write(k, v); err != nil {
			return err
		}
		k++
	}
	for ; i < len(left); i++ {
		if err := w.write(k, left[i]); err != nil {
			return err
		}
		k++
	}
	for ; j < len(right); j++ {
		if err := w.write(k, right[j]); err != nil {
			return err
		}
		k++
	}

	return nil
}
