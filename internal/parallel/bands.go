package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Chunks splits [0, n) into at most parts contiguous ranges of near-equal
// size. The returned pairs are [start, stop) and cover the range in order.
func Chunks(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	out := make([][2]int, 0, parts)
	size, rem := n/parts, n%parts
	start := 0
	for i := range parts {
		stop := start + size
		if i < rem {
			stop++
		}
		out = append(out, [2]int{start, stop})
		start = stop
	}
	return out
}

// Bands runs fn over [0, n) in contiguous bands, one goroutine per band.
// If workers is 0 or negative, GOMAXPROCS is used. A single band runs on the
// caller. The first non-nil error from any band is returned after all bands
// have finished.
func Bands(n, workers int, fn func(start, stop int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		return fn(0, n)
	}

	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			return fn(c[0], c[1])
		})
	}
	return g.Wait()
}
