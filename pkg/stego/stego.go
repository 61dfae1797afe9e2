// Package stego hides one image inside the low-order bits of another and
// recovers it again.
//
// A merged image stores, per channel, the cover's high bits followed by the
// secret's high bits. It is always written as PNG because any lossy
// re-encoding destroys the hidden bits.
package stego

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xob0t/GoSteg/pkg/codec"
)

// ReturnCode is the outcome of Merge or Unmerge. Every value except Success
// also implements error so it can be returned and inspected with CodeOf.
type ReturnCode int

const (
	Success ReturnCode = iota
	InvalidFileFormat
	FileNotFound
	InvalidDimensions
)

func (c ReturnCode) String() string {
	switch c {
	case Success:
		return "Success"
	case InvalidFileFormat:
		return "InvalidFileFormat"
	case FileNotFound:
		return "FileNotFound"
	case InvalidDimensions:
		return "InvalidDimensions"
	default:
		return fmt.Sprintf("ReturnCode(%d)", int(c))
	}
}

// Message is the fixed user-facing text for c. Success has none.
func (c ReturnCode) Message() string {
	switch c {
	case InvalidFileFormat:
		return "invalid format, only JPEG and PNG are accepted"
	case FileNotFound:
		return "one or more input files do not exist"
	case InvalidDimensions:
		return "secret image does not fit inside cover image"
	default:
		return ""
	}
}

func (c ReturnCode) Error() string {
	if msg := c.Message(); msg != "" {
		return msg
	}
	return c.String()
}

// CodeOf maps the error returned by Merge or Unmerge back to a ReturnCode.
// ok is false for unexpected failures, which have no code.
func CodeOf(err error) (code ReturnCode, ok bool) {
	if err == nil {
		return Success, true
	}
	if errors.As(err, &code) {
		return code, true
	}
	return 0, false
}

const (
	MinDepth     = 1
	MaxDepth     = 7
	DefaultDepth = 4
)

// Options configures Merge and Unmerge.
type Options struct {
	// Depth is the number of secret bits stored in each cover channel.
	// Merge and Unmerge must use the same value.
	Depth uint8
	// FitSecret shrinks a secret larger than the cover instead of failing
	// with InvalidDimensions.
	FitSecret bool
	// JPEGQuality is used when Unmerge writes a JPEG. 0 selects the codec default.
	JPEGQuality int
}

// DefaultOptions returns depth 4, no resizing and the default JPEG quality.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Depth < MinDepth || o.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range [%d, %d]", o.Depth, MinDepth, MaxDepth)
	}
	if o.JPEGQuality < 0 || o.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range [0, 100]", o.JPEGQuality)
	}
	return nil
}

var jpegExtensions = []string{".jpg", ".jpeg", ".JPG", ".JPEG"}

// OutputType picks the unmerge output format from path's extension. The
// match is case-sensitive; anything else is PNG.
func OutputType(path string) codec.ImageType {
	for _, ext := range jpegExtensions {
		if strings.HasSuffix(path, ext) {
			return codec.JPEG
		}
	}
	return codec.PNG
}

// Merge hides secretPath inside coverPath and writes the result to outPath as
// PNG using DefaultOptions.
func Merge(coverPath, secretPath, outPath string) error {
	return MergeWith(coverPath, secretPath, outPath, DefaultOptions())
}

// MergeWith is Merge with explicit options.
func MergeWith(coverPath, secretPath, outPath string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if !exists(coverPath) || !exists(secretPath) {
		return FileNotFound
	}

	coverType := codec.Classify(coverPath)
	secretType := codec.Classify(secretPath)
	if coverType == codec.Unknown || secretType == codec.Unknown {
		return InvalidFileFormat
	}

	cover, err := codec.Decode(coverPath, coverType)
	if err != nil {
		return fmt.Errorf("load cover: %w", err)
	}
	secret, err := codec.Decode(secretPath, secretType)
	if err != nil {
		return fmt.Errorf("load secret: %w", err)
	}

	if !secret.Fits(cover.Width(), cover.Height()) {
		if !opts.FitSecret {
			return InvalidDimensions
		}
		secret = secret.Fit(cover.Width(), cover.Height())
	}

	out := MergeGrids(cover, secret, opts.Depth)

	// PNG regardless of outPath's extension.
	if err := codec.Encode(out, outPath, codec.PNG); err != nil {
		return fmt.Errorf("save merged image: %w", err)
	}
	return nil
}

// MergeGrids returns a new grid the size of cover with secret hidden in it.
// Pixels outside secret are merged with black so no stale cover bits remain.
// secret must fit inside cover.
func MergeGrids(cover, secret *codec.Grid, depth uint8) *codec.Grid {
	out := cover.Clone()
	for row := 0; row < out.Height(); row++ {
		for col := 0; col < out.Width(); col++ {
			hidden := codec.Black
			if secret.Contains(col, row) {
				hidden = secret.At(col, row)
			}
			out.Set(col, row, MergeRGB(out.At(col, row), hidden, depth))
		}
	}
	return out
}

// Unmerge recovers the image hidden in mergedPath and writes it to outPath.
// The output is JPEG when outPath ends in .jpg, .jpeg, .JPG or .JPEG, PNG otherwise.
func Unmerge(mergedPath, outPath string) error {
	return UnmergeWith(mergedPath, outPath, DefaultOptions())
}

// UnmergeWith is Unmerge with explicit options.
func UnmergeWith(mergedPath, outPath string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if !exists(mergedPath) {
		return FileNotFound
	}

	// JPEG input is accepted; it just yields noise.
	mergedType := codec.Classify(mergedPath)
	if mergedType == codec.Unknown {
		return InvalidFileFormat
	}

	merged, err := codec.Decode(mergedPath, mergedType)
	if err != nil {
		return fmt.Errorf("load merged image: %w", err)
	}

	out := UnmergeGrid(merged, opts.Depth)

	encOpts := codec.EncodeOptions{Quality: opts.JPEGQuality}
	if err := codec.EncodeWith(out, outPath, OutputType(outPath), encOpts); err != nil {
		return fmt.Errorf("save recovered image: %w", err)
	}
	return nil
}

// UnmergeGrid extracts the hidden image from merged into a new grid.
func UnmergeGrid(merged *codec.Grid, depth uint8) *codec.Grid {
	out := codec.NewGrid(merged.Width(), merged.Height())
	for row := 0; row < out.Height(); row++ {
		for col := 0; col < out.Width(); col++ {
			out.Set(col, row, UnmergeRGB(merged.At(col, row), depth))
		}
	}
	return out
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
