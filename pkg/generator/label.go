// label.go - Text labels on covers, with custom TTF support and an embedded
// fallback font. Defaults to Go Regular when no custom font is given or it
// fails to load.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelMargin is the gap in pixels between the label and the image edges.
const labelMargin = 16

// FontManager handles font loading with fallback.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager parses the font at customPath, or the embedded Go font when
// customPath is empty or unreadable.
func NewFontManager(customPath string) (*FontManager, error) {
	var fontData []byte

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load custom font '%s', using default\n", customPath)
		} else {
			fontData = data
		}
	}
	if fontData == nil {
		fontData = goregular.TTF
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{parsed: parsed}, nil
}

// Face returns a font.Face at size points and 72 DPI.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// DrawLabel writes text in the bottom-left corner of img. Text wider than the
// image is clipped by the destination bounds.
func (fm *FontManager) DrawLabel(img draw.Image, text string, size float64, col color.Color) error {
	face, err := fm.Face(size)
	if err != nil {
		return err
	}
	defer face.Close()

	b := img.Bounds()
	baseline := b.Max.Y - labelMargin - face.Metrics().Descent.Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(b.Min.X+labelMargin, baseline),
	}
	drawer.DrawString(text)
	return nil
}
