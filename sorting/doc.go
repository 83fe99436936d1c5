// Package sorting implements in-place comparison sorts that report every
// comparison, swap and write to a step.Tracer.
//
// Algorithms:
//
//   - QuickSort:          Lomuto partition, pivot = last element, a[j] ≤ pivot
//     goes left; left part recursed first. Swaps with i == j are skipped.
//   - QuickSortMedian3:   median of a[lo], a[mid], a[hi] is moved to hi, then Lomuto.
//   - HeapSort:           bottom-up max-heap; sift-down prefers the left child on ties.
//   - MergeSort:          top-down, stable (ties take the left run).
//   - MergeSortBottomUp:  widths 1, 2, 4, ... with the same stable merge.
//   - BubbleSort, SelectionSort, InsertionSort.
//
// Every function has the signature of Func and sorts a in ascending order.
// On cancellation it returns step.ErrCancelled immediately and leaves a
// partially sorted (but still a permutation of the input). A completed run
// ends with one step.KindDone event whose Final lists every index.
//
// A nil tracer sorts silently.
//
// Complexity:
//
//	QuickSort      O(n log n) average, O(n²) worst; O(log n) stack average.
//	HeapSort       O(n log n); O(1) extra.
//	MergeSort      O(n log n); O(n) extra.
//	Quadratic      O(n²); O(1) extra.
package sorting
