package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/carve"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an output extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used by Save for .jpg and .jpeg files.
const DefaultJPEGQuality = 90

// Load decodes the image file at path, detecting the format from its
// content. It returns the buffer and the format name reported by the
// decoder.
func Load(path string) (*carve.Buffer, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an in-memory image.
func LoadBytes(data []byte) (*carve.Buffer, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*carve.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}

	b, err := FromStdImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode %s: %w", format, err)
	}
	return b, format, nil
}

// Save encodes b to path. The format follows the extension: .png, .jpg,
// .jpeg or .bmp.
func Save(path string, b *carve.Buffer) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := encode(f, b); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func encoderFor(path string) (func(io.Writer, *carve.Buffer) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return EncodePNG, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, b *carve.Buffer) error {
			return EncodeJPEG(w, b, DefaultJPEGQuality)
		}, nil
	case ".bmp":
		return EncodeBMP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// EncodePNG encodes b as PNG.
func EncodePNG(w io.Writer, b *carve.Buffer) error {
	if err := png.Encode(w, ToNRGBA(b)); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes b as JPEG with the given quality, clamped to 1-100.
// Alpha is discarded.
func EncodeJPEG(w io.Writer, b *carve.Buffer, quality int) error {
	quality = max(1, min(quality, 100))
	if err := jpeg.Encode(w, ToNRGBA(b), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodeBMP encodes b as BMP.
func EncodeBMP(w io.Writer, b *carve.Buffer) error {
	if err := bmp.Encode(w, ToNRGBA(b)); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}
