package carve

import (
	"github.com/gogpu/carve/internal/parallel"
)

// Finder computes minimum-cost seams.
//
// Each DP layer is split into two contiguous halves: the upper half runs on
// a new goroutine, the lower half on the caller, and the next layer starts
// only after both have returned. With WithWorkers the layer is instead
// scattered across a fixed worker pool and gathered before the next layer.
// The result never depends on how the work was split.
//
// Thread safety: a Finder is safe for concurrent use.
type Finder struct {
	split func(n int) int
	pool  *parallel.WorkerPool
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithSplit sets the function that picks where each layer of n cells is
// split between the two halves. The default is n/2. Out-of-range results
// are clamped.
func WithSplit(split func(n int) int) FinderOption {
	return func(f *Finder) {
		if split != nil {
			f.split = split
		}
	}
}

// WithWorkers replaces the two-way split with a pool of n workers that
// each take one contiguous band of every layer. If n is 0 or negative,
// GOMAXPROCS is used. Call Close to stop the pool.
func WithWorkers(n int) FinderOption {
	return func(f *Finder) {
		f.pool = parallel.NewWorkerPool(n)
	}
}

// NewFinder creates a Finder.
//
// Example:
//
//	f := carve.NewFinder()
//	seam := f.Vertical(buf)
//
//	// Scatter each layer over four workers instead of two halves.
//	f := carve.NewFinder(carve.WithWorkers(4))
//	defer f.Close()
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{split: parallel.Half}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Close releases the worker pool, if any. The Finder falls back to the
// two-way split afterwards.
func (f *Finder) Close() {
	if f.pool != nil {
		f.pool.Close()
	}
}

var defaultFinder = NewFinder()

// FindVertical returns the minimum-cost vertical seam of b using the
// default two-way split.
func FindVertical(b *Buffer) Seam {
	return defaultFinder.Vertical(b)
}

// FindHorizontal returns the minimum-cost horizontal seam of b using the
// default two-way split.
func FindHorizontal(b *Buffer) Seam {
	return defaultFinder.Horizontal(b)
}

// Vertical returns the minimum-cost top-to-bottom seam of b.
// The seam has b.Height() entries, each a column in [0, b.Width()).
func (f *Finder) Vertical(b *Buffer) Seam {
	return f.find(b, Vertical)
}

// Horizontal returns the minimum-cost left-to-right seam of b.
// The seam has b.Width() entries, each a row in [0, b.Height()).
func (f *Finder) Horizontal(b *Buffer) Seam {
	return f.find(b, Horizontal)
}

// Find returns the minimum-cost seam of b along axis.
// It panics on an unknown axis.
func (f *Finder) Find(b *Buffer, axis Axis) Seam {
	return f.find(b, axis)
}

// costEntry is one DP cell: the cheapest cumulative cost of reaching it and
// the cross index it was reached from. Cells of the first layer are never
// linked.
type costEntry struct {
	cost   uint64
	prev   int
	linked bool
}

// costTable holds one costEntry per (layer, cross) cell, layer-major.
type costTable struct {
	cells []costEntry
	cross int
}

func (t *costTable) layer(l int) []costEntry {
	return t.cells[l*t.cross : (l+1)*t.cross]
}

func (f *Finder) find(b *Buffer, axis Axis) Seam {
	g, err := gridFor(b, axis)
	if err != nil {
		panic(err)
	}

	t := &costTable{cells: make([]costEntry, g.layers*g.cross), cross: g.cross}
	for l := 1; l < g.layers; l++ {
		relax := func(start, stop int) { t.relax(g, l, start, stop) }
		if f.pool != nil && f.pool.IsRunning() {
			f.pool.ExecuteRange(g.cross, relax)
		} else {
			parallel.ForkJoin(g.cross, f.split(g.cross), relax)
		}
	}

	return t.backtrack(axis, g.layers)
}

// relax fills cells [start, stop) of layer l from layer l-1.
//
// Candidates are examined in the order c-1, c, c+1 and only a strictly
// cheaper total replaces the current choice, so ties resolve toward the
// lowest predecessor index. Only layer l is written; layer l-1 is complete
// and read-only.
func (t *costTable) relax(g grid, l, start, stop int) {
	above := t.layer(l - 1)
	row := t.layer(l)
	for c := start; c < stop; c++ {
		here := g.at(l, c)
		e := &row[c]
		for src := c - 1; src <= c+1; src++ {
			if src < 0 || src >= g.cross {
				continue
			}
			total := above[src].cost + uint64(Dissimilarity(here, g.at(l-1, src)))
			if !e.linked || total < e.cost {
				e.cost = total
				e.prev = src
				e.linked = true
			}
		}
	}
}

// backtrack picks the first cheapest cell of the last layer and follows
// predecessors back to layer 0.
func (t *costTable) backtrack(axis Axis, layers int) Seam {
	last := t.layer(layers - 1)
	end := 0
	for c := 1; c < len(last); c++ {
		if last[c].cost < last[end].cost {
			end = c
		}
	}

	index := make([]int, layers)
	index[layers-1] = end
	for l := layers - 1; l > 0; l-- {
		index[l-1] = t.layer(l)[index[l]].prev
	}

	return Seam{Axis: axis, Index: index, Cost: last[end].cost}
}
