// color.go - Color parsing and background fills.
package generator

import (
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	mrand "math/rand/v2"
	"strconv"
	"strings"
)

// ParseColor parses a color string. Accepts "#rrggbb", "rrggbb", "random", or "".
// Empty string is treated as "random".
func ParseColor(s string) (r, g, b uint8, err error) {
	if s == "" || s == "random" {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return 0, 0, 0, fmt.Errorf("random color: %w", err)
		}
		return buf[0], buf[1], buf[2], nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// toRGBA is a convenience to construct color.RGBA with full alpha.
func toRGBA(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// NewNoiseImage fills an image with base plus independent per-channel jitter
// in [-amount, amount], clamped to 0-255.
func NewNoiseImage(w, h int, base color.RGBA, amount int, rng *mrand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	jitter := func(v uint8) uint8 {
		n := int(v) + rng.IntN(2*amount+1) - amount
		return uint8(max(0, min(255, n)))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: jitter(base.R), G: jitter(base.G), B: jitter(base.B), A: 255})
		}
	}
	return img
}

// contrastColor picks black or white text for a background.
func contrastColor(bg color.RGBA) color.RGBA {
	// Rec. 601 luma.
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return toRGBA(0, 0, 0)
	}
	return toRGBA(255, 255, 255)
}
