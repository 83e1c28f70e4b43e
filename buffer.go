package carve

import (
	"errors"
	"fmt"
)

// Common errors for carving operations.
var (
	// ErrInvalidDimensions is returned when width or height is less than 1.
	ErrInvalidDimensions = errors.New("carve: invalid dimensions")

	// ErrDataSize is returned when the pixel slice length is not width*height.
	ErrDataSize = errors.New("carve: pixel data does not match dimensions")

	// ErrInvalidTarget is returned when a resize target is below 1 or larger
	// than the original image.
	ErrInvalidTarget = errors.New("carve: invalid target size")

	// ErrMinimumSize is returned when a seam would be removed from an axis
	// that is already one pixel long.
	ErrMinimumSize = errors.New("carve: dimension already at minimum")

	// ErrInvalidSeam is returned when a seam does not fit the buffer it is
	// applied to.
	ErrInvalidSeam = errors.New("carve: invalid seam")
)

// Pixel is a single non-premultiplied RGBA color with 8 bits per channel.
// Alpha is carried through carving but never contributes to cost.
type Pixel struct {
	R, G, B, A uint8
}

// RGB returns an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 0xFF}
}

// Buffer is an immutable row-major grid of pixels.
//
// The pixel slice always holds exactly Width()*Height() entries. Carving
// never resizes a Buffer in place; each seam removal builds a new one.
//
// Thread safety: Buffer is safe for concurrent read access.
type Buffer struct {
	pix    []Pixel
	width  int
	height int
}

// NewBuffer creates a buffer from a copy of pix.
// Returns ErrInvalidDimensions if width or height is less than 1 and
// ErrDataSize if len(pix) != width*height.
func NewBuffer(width, height int, pix []Pixel) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: have %d pixels, want %d", ErrDataSize, len(pix), width*height)
	}
	data := make([]Pixel, len(pix))
	copy(data, pix)
	return &Buffer{pix: data, width: width, height: height}, nil
}

// NewFilledBuffer creates a width x height buffer with every pixel set to p.
func NewFilledBuffer(width, height int, p Pixel) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	data := make([]Pixel, width*height)
	for i := range data {
		data[i] = p
	}
	return &Buffer{pix: data, width: width, height: height}, nil
}

// wrap adopts pix without copying. The caller must not retain pix.
func wrap(width, height int, pix []Pixel) *Buffer {
	return &Buffer{pix: pix, width: width, height: height}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Len returns the number of pixels, always Width()*Height().
func (b *Buffer) Len() int {
	return len(b.pix)
}

// At returns the pixel at column x, row y.
// It panics if the coordinates are out of range.
func (b *Buffer) At(x, y int) Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("carve: At(%d, %d) out of range %dx%d", x, y, b.width, b.height))
	}
	return b.pix[y*b.width+x]
}

// Row returns a copy of row y.
func (b *Buffer) Row(y int) []Pixel {
	row := make([]Pixel, b.width)
	copy(row, b.pix[y*b.width:(y+1)*b.width])
	return row
}

// Pixels returns a copy of the pixel data in row-major order.
func (b *Buffer) Pixels() []Pixel {
	out := make([]Pixel, len(b.pix))
	copy(out, b.pix)
	return out
}

// Equal reports whether b and other have the same dimensions and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, p := range b.pix {
		if other.pix[i] != p {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%dx%d)", b.width, b.height)
}
