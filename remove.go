package carve

import (
	"fmt"

	"github.com/gogpu/carve/internal/parallel"
)

// parallelRemoveThreshold is the pixel count below which seam removal
// always runs on the caller.
const parallelRemoveThreshold = 1 << 16

// RemoveVertical returns a new (width-1) x height buffer with the seam's
// pixel dropped from every row. The remaining pixels of each row keep their
// left-to-right order. b is not modified.
func RemoveVertical(b *Buffer, s Seam) (*Buffer, error) {
	return removeVertical(b, s, 1)
}

// RemoveHorizontal returns a new width x (height-1) buffer with the seam's
// pixel dropped from every column. Columns may drop different rows; the
// surviving pixels of each column keep their top-to-bottom order.
// b is not modified.
func RemoveHorizontal(b *Buffer, s Seam) (*Buffer, error) {
	return removeHorizontal(b, s, 1)
}

// Remove dispatches to RemoveVertical or RemoveHorizontal by s.Axis.
func Remove(b *Buffer, s Seam) (*Buffer, error) {
	switch s.Axis {
	case Vertical:
		return RemoveVertical(b, s)
	case Horizontal:
		return RemoveHorizontal(b, s)
	default:
		return nil, fmt.Errorf("%w: unknown axis %s", ErrInvalidSeam, s.Axis)
	}
}

func removeVertical(b *Buffer, s Seam, workers int) (*Buffer, error) {
	if s.Axis != Vertical {
		return nil, fmt.Errorf("%w: want vertical seam, got %s", ErrInvalidSeam, s.Axis)
	}
	if err := s.Validate(b); err != nil {
		return nil, err
	}

	w, h := b.width, b.height
	nw := w - 1
	out := make([]Pixel, nw*h)

	err := parallel.Bands(h, bandWorkers(b, workers), func(start, stop int) error {
		for y := start; y < stop; y++ {
			src := b.pix[y*w : (y+1)*w]
			dst := out[y*nw : (y+1)*nw]
			x := s.Index[y]
			copy(dst, src[:x])
			copy(dst[x:], src[x+1:])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return wrap(nw, h, out), nil
}

func removeHorizontal(b *Buffer, s Seam, workers int) (*Buffer, error) {
	if s.Axis != Horizontal {
		return nil, fmt.Errorf("%w: want horizontal seam, got %s", ErrInvalidSeam, s.Axis)
	}
	if err := s.Validate(b); err != nil {
		return nil, err
	}

	w, h := b.width, b.height
	out := make([]Pixel, w*(h-1))

	// Every column writes only its own column of out, so bands of columns
	// never overlap.
	err := parallel.Bands(w, bandWorkers(b, workers), func(start, stop int) error {
		for x := start; x < stop; x++ {
			skip := s.Index[x]
			ins := x
			for y := range h {
				if y == skip {
					continue
				}
				out[ins] = b.pix[y*w+x]
				ins += w
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return wrap(w, h-1, out), nil
}

func bandWorkers(b *Buffer, workers int) int {
	if len(b.pix) < parallelRemoveThreshold {
		return 1
	}
	return workers
}
