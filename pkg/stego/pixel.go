// pixel.go - Per-channel nibble packing.
package stego

import "github.com/xob0t/GoSteg/pkg/codec"

const (
	highNibble = 0xF0
	lowNibble  = 0x0F
)

// MergePixel keeps the cover's high nibble and stores the secret's high
// nibble in the low nibble. Both low nibbles are lost.
func MergePixel(cover, secret uint8) uint8 {
	return (cover & highNibble) | ((secret & highNibble) >> 4)
}

// UnmergePixel moves the hidden low nibble back to the high nibble and
// zero-fills the rest.
func UnmergePixel(merged uint8) uint8 {
	return (merged & lowNibble) << 4
}

// MergePixelDepth generalizes MergePixel: the top d bits of secret replace the
// low d bits of cover. d must be in [MinDepth, MaxDepth].
func MergePixelDepth(cover, secret, d uint8) uint8 {
	return (cover & (0xFF << d)) | (secret >> (8 - d))
}

// UnmergePixelDepth is the inverse of MergePixelDepth for the hidden bits.
func UnmergePixelDepth(merged, d uint8) uint8 {
	return merged << (8 - d)
}

// MergeRGB applies MergePixelDepth to each channel independently.
func MergeRGB(cover, secret codec.RGB, d uint8) codec.RGB {
	if d == DefaultDepth {
		return codec.RGB{
			R: MergePixel(cover.R, secret.R),
			G: MergePixel(cover.G, secret.G),
			B: MergePixel(cover.B, secret.B),
		}
	}
	return codec.RGB{
		R: MergePixelDepth(cover.R, secret.R, d),
		G: MergePixelDepth(cover.G, secret.G, d),
		B: MergePixelDepth(cover.B, secret.B, d),
	}
}

// UnmergeRGB applies UnmergePixelDepth to each channel independently.
func UnmergeRGB(merged codec.RGB, d uint8) codec.RGB {
	if d == DefaultDepth {
		return codec.RGB{
			R: UnmergePixel(merged.R),
			G: UnmergePixel(merged.G),
			B: UnmergePixel(merged.B),
		}
	}
	return codec.RGB{
		R: UnmergePixelDepth(merged.R, d),
		G: UnmergePixelDepth(merged.G, d),
		B: UnmergePixelDepth(merged.B, d),
	}
}
