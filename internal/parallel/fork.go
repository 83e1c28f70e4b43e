package parallel

import "sync"

// Half returns the default split point of an n-element range.
func Half(n int) int {
	return n / 2
}

// ForkJoin runs fn over [0, n) split at mid.
//
// [mid, n) runs on a new goroutine while [0, mid) runs on the calling
// goroutine. ForkJoin returns only after both halves have completed, so
// every write made by fn is visible to the caller afterwards.
//
// mid is clamped to [0, n]. If either half is empty, fn runs once over the
// whole range on the caller without spawning a goroutine.
func ForkJoin(n, mid int, fn func(start, stop int)) {
	if n <= 0 {
		return
	}
	mid = max(0, min(mid, n))
	if mid == 0 || mid == n {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn(mid, n)
	}()
	fn(0, mid)
	wg.Wait()
}
