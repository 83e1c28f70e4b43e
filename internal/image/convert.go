package image

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/carve"
)

// FromStdImage converts img to a carve buffer of non-premultiplied pixels.
func FromStdImage(img image.Image) (*carve.Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pix := make([]carve.Pixel, width*height)
	for y := range height {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := range width {
			off := x * 4
			pix[y*width+x] = carve.Pixel{R: row[off], G: row[off+1], B: row[off+2], A: row[off+3]}
		}
	}

	return carve.NewBuffer(width, height, pix)
}

// ToNRGBA converts b to a standard library image.
func ToNRGBA(b *carve.Buffer) *image.NRGBA {
	width, height := b.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range b.Pixels() {
		off := i * 4
		img.Pix[off] = p.R
		img.Pix[off+1] = p.G
		img.Pix[off+2] = p.B
		img.Pix[off+3] = p.A
	}
	return img
}

// Scale resizes b uniformly to width x height with Catmull-Rom filtering.
// It is the baseline seam carving is compared against.
func Scale(b *carve.Buffer, width, height int) (*carve.Buffer, error) {
	if width < 1 || height < 1 {
		return nil, carve.ErrInvalidTarget
	}
	src := ToNRGBA(b)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromStdImage(dst)
}
