// grid.go - In-memory 3-channel, 8-bit pixel grid.
package codec

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// RGB is a single pixel with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Black is the zero pixel.
var Black = RGB{}

// Grid is a width x height raster of RGB pixels stored row-major.
// Its dimensions never change after construction.
type Grid struct {
	width  int
	height int
	pix    []RGB
}

// NewGrid allocates a black grid.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("codec: negative grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the pixel at column x, row y.
func (g *Grid) At(x, y int) RGB {
	return g.pix[y*g.width+x]
}

// Set stores p at column x, row y.
func (g *Grid) Set(x, y int, p RGB) {
	g.pix[y*g.width+x] = p
}

// Contains reports whether (x, y) is inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.pix, g.pix)
	return c
}

// Fits reports whether g fits inside a maxW x maxH area.
func (g *Grid) Fits(maxW, maxH int) bool {
	return g.width <= maxW && g.height <= maxH
}

// Fit returns g scaled down with nearest-neighbour sampling so that it fits
// inside maxW x maxH, keeping the aspect ratio. A grid that already fits is
// returned as a clone.
func (g *Grid) Fit(maxW, maxH int) *Grid {
	if g.Fits(maxW, maxH) {
		return g.Clone()
	}
	scaled := resize.Thumbnail(uint(maxW), uint(maxH), g.Image(), resize.NearestNeighbor)
	return FromImage(scaled)
}

// Image returns g as an opaque NRGBA image.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
	return img
}

// FromImage flattens any image into a grid anchored at (0, 0). Alpha is
// dropped after conversion to non-premultiplied color.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}

	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < g.width; x++ {
			i := x * 4
			g.pix[y*g.width+x] = RGB{R: row[i], G: row[i+1], B: row[i+2]}
		}
	}
	return g
}
