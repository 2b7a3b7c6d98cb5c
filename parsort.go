package resort

import (
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// parallelSortFunc sorts s by cmp. Slices shorter than threshold, or any
// slice when threshold is negative, are sorted in place on the calling
// goroutine. Larger ones are split into one chunk per CPU.
// It returns the number of chunks used.
//
// cmp must be a total order for the result to be deterministic.
func parallelSortFunc[E any](s []E, cmp func(a, b E) int, threshold int) int {
	chunks := runtime.GOMAXPROCS(0)
	if threshold < 0 || len(s) < threshold || chunks < 2 || len(s) < 2 {
		slices.SortFunc(s, cmp)
		return 1
	}

	return sortChunked(s, cmp, chunks)
}

// sortChunked sorts n nearly equal chunks of s concurrently and merges
// them pairwise, one errgroup per merge level.
func sortChunked[E any](s []E, cmp func(a, b E) int, n int) int {
	if n > len(s) {
		n = len(s)
	}
	if n < 2 {
		slices.SortFunc(s, cmp)
		return 1
	}

	bounds := make([]int, n+1)
	for i := range bounds {
		bounds[i] = i * len(s) / n
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		part := s[bounds[i]:bounds[i+1]]
		g.Go(func() error {
			slices.SortFunc(part, cmp)
			return nil
		})
	}
	_ = g.Wait()

	src, dst := s, make([]E, len(s))
	for len(bounds) > 2 {
		next := make([]int, 0, len(bounds)/2+2)

		var lg errgroup.Group
		i := 0
		for ; i+2 < len(bounds); i += 2 {
			lo, mid, hi := bounds[i], bounds[i+1], bounds[i+2]
			lg.Go(func() error {
				mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
				return nil
			})
			next = append(next, lo)
		}
		if i+1 < len(bounds) {
			// Odd run out: carry it to the next level unchanged.
			lo, hi := bounds[i], bounds[i+1]
			copy(dst[lo:hi], src[lo:hi])
			next = append(next, lo)
		}
		_ = lg.Wait()

		bounds = append(next, len(s))
		src, dst = dst, src
	}

	if &src[0] != &s[0] {
		copy(s, src)
	}

	return n
}

// mergeRuns merges sorted a and b into dst, taking from a on ties.
func mergeRuns[E any](dst, a, b []E, cmp func(x, y E) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}

	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
