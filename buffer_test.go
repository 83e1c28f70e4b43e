package carve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		pix     int
		wantErr error
	}{
		{"valid", 3, 2, 6, nil},
		{"single pixel", 1, 1, 1, nil},
		{"zero width", 0, 2, 0, ErrInvalidDimensions},
		{"zero height", 2, 0, 0, ErrInvalidDimensions},
		{"negative", -1, 2, 0, ErrInvalidDimensions},
		{"short data", 3, 2, 5, ErrDataSize},
		{"long data", 3, 2, 7, ErrDataSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(tt.width, tt.height, make([]Pixel, tt.pix))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuffer() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("Bounds() = %dx%d, want %dx%d", b.Width(), b.Height(), tt.width, tt.height)
			}
			if b.Len() != tt.width*tt.height {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.width*tt.height)
			}
		})
	}
}

func TestNewBuffer_Copies(t *testing.T) {
	pix := []Pixel{gray(1), gray(2)}
	b, err := NewBuffer(2, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	pix[0] = gray(99)
	if b.At(0, 0) != gray(1) {
		t.Error("NewBuffer must copy its input")
	}

	out := b.Pixels()
	out[1] = gray(99)
	if b.At(1, 0) != gray(2) {
		t.Error("Pixels must return a copy")
	}
}

func TestNewFilledBuffer(t *testing.T) {
	b, err := NewFilledBuffer(4, 3, gray(7))
	if err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 4 {
			if b.At(x, y) != gray(7) {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, b.At(x, y), gray(7))
			}
		}
	}
	if _, err := NewFilledBuffer(0, 3, gray(0)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewFilledBuffer(0, 3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBuffer_RowAndAt(t *testing.T) {
	b := mustBuffer(t,
		[]Pixel{gray(0), gray(1), gray(2)},
		[]Pixel{gray(3), gray(4), gray(5)},
	)
	if diff := cmp.Diff([]Pixel{gray(3), gray(4), gray(5)}, b.Row(1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}
	if b.At(2, 0) != gray(2) {
		t.Errorf("At(2, 0) = %v, want %v", b.At(2, 0), gray(2))
	}
}

func TestBuffer_AtPanicsOutOfRange(t *testing.T) {
	b := mustBuffer(t, []Pixel{gray(0)})
	defer func() {
		if recover() == nil {
			t.Error("At(1, 0) should panic")
		}
	}()
	_ = b.At(1, 0)
}

func TestBuffer_Equal(t *testing.T) {
	a := mustBuffer(t, []Pixel{gray(1), gray(2)})
	b := mustBuffer(t, []Pixel{gray(1), gray(2)})
	c := mustBuffer(t, []Pixel{gray(1)}, []Pixel{gray(2)})
	d := mustBuffer(t, []Pixel{gray(1), gray(3)})

	if !a.Equal(b) {
		t.Error("identical buffers should be equal")
	}
	if a.Equal(c) {
		t.Error("buffers with different shapes should differ")
	}
	if a.Equal(d) {
		t.Error("buffers with different pixels should differ")
	}
	if a.Equal(nil) {
		t.Error("buffer should not equal nil")
	}
}

func TestBuffer_String(t *testing.T) {
	b := mustBuffer(t, []Pixel{gray(1), gray(2)})
	if got := b.String(); got != "Buffer(2x1)" {
		t.Errorf("String() = %q, want %q", got, "Buffer(2x1)")
	}
}
