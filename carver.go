package carve

import (
	"fmt"
	"sync"
)

// Carver resizes an image by repeatedly removing seams.
//
// A Carver remembers the original image. Shrinking continues from the
// current result; any request that grows either axis first discards all
// progress and restarts from the original, because seams cannot be put
// back.
//
// Thread safety: Carver is safe for concurrent use. Requests are
// serialized.
type Carver struct {
	mu       sync.Mutex
	original *Buffer
	current  *Buffer
	opts     carverOptions
}

// NewCarver creates a Carver for original.
func NewCarver(original *Buffer, opts ...Option) (*Carver, error) {
	if original == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Carver{
		original: original,
		current:  original,
		opts:     o,
	}, nil
}

// Original returns the full-resolution image.
func (c *Carver) Original() *Buffer {
	return c.original
}

// Current returns the most recent result.
func (c *Carver) Current() *Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Size returns the dimensions of the current result.
func (c *Carver) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Bounds()
}

// Reset discards all carving progress.
func (c *Carver) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.original
}

// ResizeTo carves the image down to width x height and returns the result.
//
// If either target dimension is larger than the current one, carving first
// restarts from the original image. Vertical seams are then removed until
// the width matches, followed by horizontal seams until the height matches.
//
// Targets below 1 or above the original dimensions return ErrInvalidTarget
// without changing any state.
func (c *Carver) ResizeTo(width, height int) (*Buffer, error) {
	ow, oh := c.original.Bounds()
	if width < 1 || height < 1 || width > ow || height > oh {
		return nil, fmt.Errorf("%w: %dx%d (original %dx%d)", ErrInvalidTarget, width, height, ow, oh)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	log := Logger()
	cur := c.current
	log.Debug("carve: resize", "from", cur.String(), "width", width, "height", height)

	if width > cur.width || height > cur.height {
		log.Info("carve: growing, restarting from original", "from", cur.String(), "original", c.original.String())
		cur = c.original
	}

	var err error
	for cur.width > width {
		if cur, err = c.carve(cur, Vertical); err != nil {
			return nil, err
		}
	}
	for cur.height > height {
		if cur, err = c.carve(cur, Horizontal); err != nil {
			return nil, err
		}
	}

	c.current = cur
	return cur, nil
}

// carve removes one seam along axis.
func (c *Carver) carve(b *Buffer, axis Axis) (*Buffer, error) {
	seam := c.opts.finder.Find(b, axis)
	Logger().Debug("carve: seam", "axis", axis.String(), "cost", seam.Cost, "size", b.String())
	if c.opts.onSeam != nil {
		c.opts.onSeam(seam)
	}

	var next *Buffer
	var err error
	if axis == Vertical {
		next, err = removeVertical(b, seam, c.opts.removalWorkers)
	} else {
		next, err = removeHorizontal(b, seam, c.opts.removalWorkers)
	}
	if err != nil {
		return nil, fmt.Errorf("remove %s seam from %s: %w", axis, b, err)
	}
	return next, nil
}
