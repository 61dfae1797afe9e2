// Package codec detects image containers and converts JPEG/PNG files to and
// from 8-bit RGB pixel grids.
package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// DefaultJPEGQuality is used when EncodeOptions leaves Quality unset.
const DefaultJPEGQuality = 90

// EncodeOptions tunes the encoders. The zero value is valid.
type EncodeOptions struct {
	Quality int // JPEG quality 1-100; 0 means DefaultJPEGQuality
}

func (o EncodeOptions) jpegQuality() int {
	if o.Quality <= 0 {
		return DefaultJPEGQuality
	}
	return min(o.Quality, 100)
}

// Decode reads the file at path as an image of type t.
func Decode(path string, t ImageType) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeReader(f, t)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return g, nil
}

// DecodeReader decodes an image of type t from r.
func DecodeReader(r io.Reader, t ImageType) (*Grid, error) {
	var (
		img image.Image
		err error
	)
	switch t {
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported image type %s", t)
	}
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Encode writes g to path as type t, replacing any existing file.
func Encode(g *Grid, path string, t ImageType) error {
	return EncodeWith(g, path, t, EncodeOptions{})
}

// EncodeWith is Encode with explicit encoder options.
func EncodeWith(g *Grid, path string, t ImageType, opts EncodeOptions) error {
	// Reject before os.Create so an unsupported type never truncates path.
	if t != PNG && t != JPEG {
		return fmt.Errorf("unsupported image type %s", t)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := EncodeWriter(f, g, t, opts); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// EncodeWriter encodes g as type t into w.
func EncodeWriter(w io.Writer, g *Grid, t ImageType, opts EncodeOptions) error {
	img := g.Image()
	switch t {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
	case JPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()}); err != nil {
			return fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image type %s", t)
	}
	return nil
}
