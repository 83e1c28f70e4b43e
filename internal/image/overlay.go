package image

import (
	"fmt"

	"github.com/gogpu/carve"
)

// SeamColor is the default color used to paint seams.
var SeamColor = carve.RGB(0xFF, 0, 0)

// MarkSeams returns a copy of b with the pixels of every seam painted c.
// Seams must have been found in b itself.
func MarkSeams(b *carve.Buffer, c carve.Pixel, seams ...carve.Seam) (*carve.Buffer, error) {
	width, height := b.Bounds()
	pix := b.Pixels()

	for _, s := range seams {
		layers, cross := height, width
		if s.Axis == carve.Horizontal {
			layers, cross = width, height
		}
		if s.Len() != layers {
			return nil, fmt.Errorf("%w: %s seam has %d entries, want %d", carve.ErrInvalidSeam, s.Axis, s.Len(), layers)
		}
		for l, i := range s.Index {
			if i < 0 || i >= cross {
				return nil, fmt.Errorf("%w: entry %d = %d outside [0, %d)", carve.ErrInvalidSeam, l, i, cross)
			}
			x, y := i, l
			if s.Axis == carve.Horizontal {
				x, y = l, i
			}
			pix[y*width+x] = c
		}
	}

	return carve.NewBuffer(width, height, pix)
}
