package carve

import "fmt"

// Axis selects the seam orientation.
type Axis uint8

const (
	// Vertical seams run top to bottom, one column per row.
	// Removing one narrows the image by a pixel.
	Vertical Axis = iota

	// Horizontal seams run left to right, one row per column.
	// Removing one shortens the image by a pixel.
	Horizontal
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Seam is a connected path with one pixel per layer.
//
// For a vertical seam Index[y] is the column removed from row y; for a
// horizontal seam Index[x] is the row removed from column x. Consecutive
// entries differ by at most one.
type Seam struct {
	Axis  Axis
	Index []int

	// Cost is the sum of Dissimilarity over every adjacent pair of the path.
	Cost uint64
}

// Len returns the number of layers the seam crosses.
func (s Seam) Len() int {
	return len(s.Index)
}

// Validate checks that s can be removed from b: the seam must cross every
// layer, stay inside the cross dimension, and move at most one step per
// layer. It returns ErrMinimumSize if the axis to shrink is already 1.
func (s Seam) Validate(b *Buffer) error {
	g, err := gridFor(b, s.Axis)
	if err != nil {
		return err
	}
	if g.cross < 2 {
		return fmt.Errorf("%w: cannot remove %s seam from %s", ErrMinimumSize, s.Axis, b)
	}
	if len(s.Index) != g.layers {
		return fmt.Errorf("%w: %s seam has %d entries, want %d", ErrInvalidSeam, s.Axis, len(s.Index), g.layers)
	}
	for l, c := range s.Index {
		if c < 0 || c >= g.cross {
			return fmt.Errorf("%w: entry %d = %d outside [0, %d)", ErrInvalidSeam, l, c, g.cross)
		}
		if l > 0 {
			if d := c - s.Index[l-1]; d < -1 || d > 1 {
				return fmt.Errorf("%w: entries %d and %d are not adjacent", ErrInvalidSeam, l-1, l)
			}
		}
	}
	return nil
}

// PathCost sums Dissimilarity along a path through b. Entries are assumed
// to be in range for the axis.
func PathCost(b *Buffer, axis Axis, index []int) uint64 {
	g, err := gridFor(b, axis)
	if err != nil {
		return 0
	}
	var total uint64
	for l := 1; l < len(index); l++ {
		total += uint64(Dissimilarity(g.at(l, index[l]), g.at(l-1, index[l-1])))
	}
	return total
}

// grid views a buffer as layers of cross-dimension cells. For vertical seams
// a layer is a row; for horizontal seams a layer is a column.
type grid struct {
	pix         []Pixel
	layers      int
	cross       int
	layerStride int
	crossStride int
}

func gridFor(b *Buffer, axis Axis) (grid, error) {
	switch axis {
	case Vertical:
		return grid{pix: b.pix, layers: b.height, cross: b.width, layerStride: b.width, crossStride: 1}, nil
	case Horizontal:
		return grid{pix: b.pix, layers: b.width, cross: b.height, layerStride: 1, crossStride: b.width}, nil
	default:
		return grid{}, fmt.Errorf("%w: unknown axis %s", ErrInvalidSeam, axis)
	}
}

func (g grid) at(layer, c int) Pixel {
	return g.pix[layer*g.layerStride+c*g.crossStride]
}
