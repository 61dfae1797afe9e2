package codec

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBasics(t *testing.T) {
	g := NewGrid(4, 3)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, Black, g.At(3, 2))

	g.Set(1, 2, RGB{R: 1, G: 2, B: 3})
	assert.Equal(t, RGB{R: 1, G: 2, B: 3}, g.At(1, 2))

	assert.True(t, g.Contains(0, 0))
	assert.True(t, g.Contains(3, 2))
	assert.False(t, g.Contains(4, 0))
	assert.False(t, g.Contains(0, 3))
	assert.False(t, g.Contains(-1, 0))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, RGB{R: 9})

	c := g.Clone()
	c.Set(0, 0, RGB{G: 7})

	assert.Equal(t, RGB{R: 9}, g.At(0, 0))
	assert.Equal(t, RGB{G: 7}, c.At(0, 0))
}

func TestFromImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	g := FromImage(src)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 1, g.Height())
	assert.Equal(t, RGB{R: 200, G: 100, B: 50}, g.At(0, 0))
	assert.Equal(t, RGB{R: 10, G: 20, B: 30}, g.At(1, 0))
}

func TestFromImageAnchorsAtOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 12, 21))
	src.SetRGBA(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetRGBA(11, 20, color.RGBA{R: 4, G: 5, B: 6, A: 255})

	g := FromImage(src)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 1, g.Height())
	assert.Equal(t, RGB{R: 1, G: 2, B: 3}, g.At(0, 0))
	assert.Equal(t, RGB{R: 4, G: 5, B: 6}, g.At(1, 0))
}

func TestFromImageConvertsGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 1))
	src.SetGray(0, 0, color.Gray{Y: 0x7F})

	g := FromImage(src)
	assert.Equal(t, RGB{R: 0x7F, G: 0x7F, B: 0x7F}, g.At(0, 0))
}

func TestImageRoundTrip(t *testing.T) {
	g := NewGrid(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, RGB{R: uint8(x * 40), G: uint8(y * 90), B: uint8(x + y)})
		}
	}
	assert.Equal(t, g, FromImage(g.Image()))
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"already fits", 4, 4, 8, 8, 4, 4},
		{"exact fit", 8, 8, 8, 8, 8, 8},
		{"too wide", 16, 8, 8, 8, 8, 4},
		{"too tall", 4, 16, 8, 8, 2, 8},
		{"too big both ways", 20, 10, 5, 5, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGrid(tt.w, tt.h).Fit(tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, got.Width())
			assert.Equal(t, tt.wantH, got.Height())
			assert.True(t, got.Fits(tt.maxW, tt.maxH))
		})
	}
}

func TestFitKeepsColor(t *testing.T) {
	g := NewGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, RGB{R: 0xFF, G: 0x80, B: 0x01})
		}
	}

	got := g.Fit(5, 5)
	for y := 0; y < got.Height(); y++ {
		for x := 0; x < got.Width(); x++ {
			assert.Equal(t, RGB{R: 0xFF, G: 0x80, B: 0x01}, got.At(x, y))
		}
	}
}
