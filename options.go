package carve

// Option configures a Carver during creation.
//
// Example:
//
//	// Default: two-way split per DP layer, sequential removal
//	c, err := carve.NewCarver(buf)
//
//	// Pool-based seam search and parallel removal
//	f := carve.NewFinder(carve.WithWorkers(8))
//	defer f.Close()
//	c, err := carve.NewCarver(buf, carve.WithFinder(f), carve.WithRemovalWorkers(8))
type Option func(*carverOptions)

type carverOptions struct {
	finder         *Finder
	removalWorkers int
	onSeam         func(Seam)
}

func defaultOptions() carverOptions {
	return carverOptions{
		finder:         defaultFinder,
		removalWorkers: 1,
	}
}

// WithFinder sets the Finder used to locate seams.
// The Carver does not close it.
func WithFinder(f *Finder) Option {
	return func(o *carverOptions) {
		if f != nil {
			o.finder = f
		}
	}
}

// WithRemovalWorkers sets how many goroutines share each seam removal.
// Removal of small buffers always runs on the caller. If n is 0 or
// negative, GOMAXPROCS is used.
func WithRemovalWorkers(n int) Option {
	return func(o *carverOptions) {
		o.removalWorkers = n
	}
}

// WithSeamHook registers fn to be called with every seam just before it is
// removed. Seam indices refer to the buffer the seam was found in. fn runs
// on the goroutine calling ResizeTo and must not call back into the Carver.
func WithSeamHook(fn func(Seam)) Option {
	return func(o *carverOptions) {
		o.onSeam = fn
	}
}
