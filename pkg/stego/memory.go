// memory.go - Merge and unmerge on encoded bytes, for callers without a
// filesystem.
package stego

import (
	"bytes"
	"fmt"

	"github.com/xob0t/GoSteg/pkg/codec"
)

// MergeBytes is MergeWith on encoded images held in memory. It returns the
// merged image as PNG. There is no FileNotFound case.
func MergeBytes(cover, secret []byte, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	coverType := codec.ClassifyBytes(cover)
	secretType := codec.ClassifyBytes(secret)
	if coverType == codec.Unknown || secretType == codec.Unknown {
		return nil, InvalidFileFormat
	}

	c, err := codec.DecodeReader(bytes.NewReader(cover), coverType)
	if err != nil {
		return nil, fmt.Errorf("load cover: %w", err)
	}
	s, err := codec.DecodeReader(bytes.NewReader(secret), secretType)
	if err != nil {
		return nil, fmt.Errorf("load secret: %w", err)
	}

	if !s.Fits(c.Width(), c.Height()) {
		if !opts.FitSecret {
			return nil, InvalidDimensions
		}
		s = s.Fit(c.Width(), c.Height())
	}

	var buf bytes.Buffer
	if err := codec.EncodeWriter(&buf, MergeGrids(c, s, opts.Depth), codec.PNG, codec.EncodeOptions{}); err != nil {
		return nil, fmt.Errorf("encode merged image: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmergeBytes is UnmergeWith on an encoded image held in memory. The
// recovered image is encoded as t, which must be PNG or JPEG.
func UnmergeBytes(merged []byte, t codec.ImageType, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mergedType := codec.ClassifyBytes(merged)
	if mergedType == codec.Unknown {
		return nil, InvalidFileFormat
	}

	m, err := codec.DecodeReader(bytes.NewReader(merged), mergedType)
	if err != nil {
		return nil, fmt.Errorf("load merged image: %w", err)
	}

	var buf bytes.Buffer
	encOpts := codec.EncodeOptions{Quality: opts.JPEGQuality}
	if err := codec.EncodeWriter(&buf, UnmergeGrid(m, opts.Depth), t, encOpts); err != nil {
		return nil, fmt.Errorf("encode recovered image: %w", err)
	}
	return buf.Bytes(), nil
}
