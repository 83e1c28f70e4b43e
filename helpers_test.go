package carve

import (
	"math/rand/v2"
	"testing"
)

// gray returns an opaque pixel with all channels set to v.
func gray(v uint8) Pixel {
	return RGB(v, v, v)
}

// mustBuffer builds a buffer from rows of pixels.
func mustBuffer(t testing.TB, rows ...[]Pixel) *Buffer {
	t.Helper()
	var pix []Pixel
	for _, r := range rows {
		pix = append(pix, r...)
	}
	b, err := NewBuffer(len(rows[0]), len(rows), pix)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return b
}

// randomBuffer fills a buffer from a small palette so that cost ties are
// common.
func randomBuffer(t testing.TB, rng *rand.Rand, width, height int) *Buffer {
	t.Helper()
	palette := []uint8{0, 10, 20, 40}
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = Pixel{
			R: palette[rng.IntN(len(palette))],
			G: palette[rng.IntN(len(palette))],
			B: palette[rng.IntN(len(palette))],
			A: uint8(rng.IntN(256)),
		}
	}
	b, err := NewBuffer(width, height, pix)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return b
}

// transpose swaps rows and columns.
func transpose(t testing.TB, b *Buffer) *Buffer {
	t.Helper()
	w, h := b.Bounds()
	pix := make([]Pixel, w*h)
	for y := range h {
		for x := range w {
			pix[x*h+y] = b.At(x, y)
		}
	}
	out, err := NewBuffer(h, w, pix)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return out
}

// bruteForceMin enumerates every connected path and returns the lowest
// total cost.
func bruteForceMin(b *Buffer, axis Axis) uint64 {
	g, _ := gridFor(b, axis)
	best := ^uint64(0)
	var walk func(l, c int, cost uint64)
	walk = func(l, c int, cost uint64) {
		if l == g.layers-1 {
			best = min(best, cost)
			return
		}
		for next := c - 1; next <= c+1; next++ {
			if next < 0 || next >= g.cross {
				continue
			}
			walk(l+1, next, cost+uint64(Dissimilarity(g.at(l+1, next), g.at(l, c))))
		}
	}
	for c := range g.cross {
		walk(0, c, 0)
	}
	return best
}
