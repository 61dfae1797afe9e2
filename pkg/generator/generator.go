// Package generator creates cover images for steganography.
//
// Covers are always PNG: a merged image must be stored losslessly, and a
// lossless cover keeps its visible high bits exact.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// Pattern selects how the cover background is filled.
type Pattern string

const (
	PatternSolid Pattern = "solid"
	PatternNoise Pattern = "noise"
)

// Config holds parameters for cover generation.
type Config struct {
	Width    int     // Pixel width (default: 1280)
	Height   int     // Pixel height (default: 720)
	Color    string  // Hex "#rrggbb" or "random"
	Pattern  Pattern // PatternSolid (default) or PatternNoise
	Noise    int     // Max per-channel jitter for PatternNoise (default: 24)
	Seed     uint64  // Noise seed; 0 picks a random one
	Label    string  // Optional text drawn near the bottom-left corner
	FontPath string  // Custom TTF for Label; empty uses Go Regular
	FontSize float64 // Label size in points (default: 32)
}

func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Pattern == "" {
		cfg.Pattern = PatternSolid
	}
	if cfg.Noise <= 0 {
		cfg.Noise = 24
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 32
	}
	return cfg
}

// Generate writes a cover PNG to output. Any extension other than ".png" is
// rejected so a cover is never written lossy by accident.
func Generate(output string, cfg Config) error {
	if ext := strings.ToLower(filepath.Ext(output)); ext != ".png" {
		return fmt.Errorf("unsupported format %q: covers are written as .png", ext)
	}

	img, err := Render(cfg)
	if err != nil {
		return err
	}
	return writePNG(output, img)
}

// GenerateToWriter renders a cover and writes it as PNG to w.
func GenerateToWriter(w io.Writer, cfg Config) error {
	img, err := Render(cfg)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render builds the cover image in memory.
func Render(cfg Config) (*image.RGBA, error) {
	cfg = cfg.withDefaults()

	r, g, b, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}
	base := toRGBA(r, g, b)

	var img *image.RGBA
	switch cfg.Pattern {
	case PatternSolid:
		img = NewSolidImage(cfg.Width, cfg.Height, base)
	case PatternNoise:
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
		img = NewNoiseImage(cfg.Width, cfg.Height, base, cfg.Noise, rng)
	default:
		return nil, fmt.Errorf("unknown pattern %q: use %q or %q", cfg.Pattern, PatternSolid, PatternNoise)
	}

	if cfg.Label != "" {
		fm, err := NewFontManager(cfg.FontPath)
		if err != nil {
			return nil, err
		}
		if err := fm.DrawLabel(img, cfg.Label, cfg.FontSize, contrastColor(base)); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// writePNG encodes img to a PNG file at the given path.
func writePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
