package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/carve"
)

func TestFromStdImage(t *testing.T) {
	tests := []struct {
		name string
		img  func() image.Image
		x, y int
		want carve.Pixel
	}{
		{
			name: "NRGBA",
			img: func() image.Image {
				m := image.NewNRGBA(image.Rect(0, 0, 4, 3))
				m.SetNRGBA(2, 1, color.NRGBA{R: 128, G: 64, B: 32, A: 200})
				return m
			},
			x: 2, y: 1,
			want: carve.Pixel{R: 128, G: 64, B: 32, A: 200},
		},
		{
			name: "RGBA opaque",
			img: func() image.Image {
				m := image.NewRGBA(image.Rect(0, 0, 4, 3))
				m.SetRGBA(1, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})
				return m
			},
			x: 1, y: 2,
			want: carve.RGB(200, 100, 50),
		},
		{
			name: "Gray",
			img: func() image.Image {
				m := image.NewGray(image.Rect(0, 0, 4, 3))
				m.SetGray(3, 0, color.Gray{Y: 77})
				return m
			},
			x: 3, y: 0,
			want: carve.RGB(77, 77, 77),
		},
		{
			name: "offset origin",
			img: func() image.Image {
				m := image.NewNRGBA(image.Rect(10, 20, 14, 23))
				m.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
				return m
			},
			x: 0, y: 0,
			want: carve.RGB(1, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromStdImage(tt.img())
			if err != nil {
				t.Fatalf("FromStdImage() error = %v", err)
			}
			if w, h := b.Bounds(); w != 4 || h != 3 {
				t.Fatalf("Bounds() = %dx%d, want 4x3", w, h)
			}
			if got := b.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFromStdImage_Empty(t *testing.T) {
	if _, err := FromStdImage(image.NewNRGBA(image.Rect(0, 0, 0, 5))); err == nil {
		t.Error("FromStdImage(empty) should fail")
	}
}

func TestToNRGBA_RoundTrip(t *testing.T) {
	b := testBuffer(t)
	back, err := FromStdImage(ToNRGBA(b))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b.Pixels(), back.Pixels()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestScale(t *testing.T) {
	b := testBuffer(t)
	got, err := Scale(b, 2, 5)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if w, h := got.Bounds(); w != 2 || h != 5 {
		t.Errorf("Scale() = %dx%d, want 2x5", w, h)
	}
	if _, err := Scale(b, 0, 5); err == nil {
		t.Error("Scale(0, 5) should fail")
	}
}

func TestMarkSeams(t *testing.T) {
	b := testBuffer(t)
	v := carve.FindVertical(b)
	h := carve.FindHorizontal(b)

	got, err := MarkSeams(b, SeamColor, v, h)
	if err != nil {
		t.Fatalf("MarkSeams() error = %v", err)
	}
	for y, x := range v.Index {
		if got.At(x, y) != SeamColor {
			t.Errorf("vertical seam pixel (%d, %d) not painted", x, y)
		}
	}
	for x, y := range h.Index {
		if got.At(x, y) != SeamColor {
			t.Errorf("horizontal seam pixel (%d, %d) not painted", x, y)
		}
	}
	if b.At(v.Index[0], 0) == SeamColor {
		t.Error("MarkSeams must not modify its input")
	}
}

func TestMarkSeams_Invalid(t *testing.T) {
	b := testBuffer(t)
	bad := []carve.Seam{
		{Axis: carve.Vertical, Index: []int{0}},
		{Axis: carve.Horizontal, Index: []int{0, 0, 9}},
	}
	for _, s := range bad {
		if _, err := MarkSeams(b, SeamColor, s); err == nil {
			t.Errorf("MarkSeams(%v) should fail", s)
		}
	}
}

// testBuffer returns a 3x4 opaque gradient.
func testBuffer(t *testing.T) *carve.Buffer {
	t.Helper()
	pix := make([]carve.Pixel, 12)
	for i := range pix {
		pix[i] = carve.RGB(uint8(i*20), uint8(255-i*20), uint8(i*7))
	}
	b, err := carve.NewBuffer(3, 4, pix)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
