package generator

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoSteg/pkg/codec"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{in: "#ff8000", r: 0xFF, g: 0x80, b: 0x00},
		{in: "1a2B3c", r: 0x1A, g: 0x2B, b: 0x3C},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "#1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}

	for _, s := range []string{"", "random"} {
		_, _, _, err := ParseColor(s)
		assert.NoError(t, err, s)
	}
}

func TestRenderSolid(t *testing.T) {
	img, err := Render(Config{Width: 10, Height: 6, Color: "#336699"})
	require.NoError(t, err)

	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xFF}, img.RGBAAt(x, y))
		}
	}
}

func TestRenderDefaults(t *testing.T) {
	img, err := Render(Config{Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestRenderNoise(t *testing.T) {
	cfg := Config{Width: 32, Height: 32, Color: "#808080", Pattern: PatternNoise, Noise: 10, Seed: 42}

	a, err := Render(cfg)
	require.NoError(t, err)
	b, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix, "same seed must give the same cover")

	distinct := map[color.RGBA]bool{}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := a.RGBAAt(x, y)
			distinct[c] = true
			for _, v := range []uint8{c.R, c.G, c.B} {
				assert.GreaterOrEqual(t, int(v), 0x80-10)
				assert.LessOrEqual(t, int(v), 0x80+10)
			}
			assert.Equal(t, uint8(0xFF), c.A)
		}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestNoiseClamps(t *testing.T) {
	img, err := Render(Config{Width: 16, Height: 16, Color: "#ff0000", Pattern: PatternNoise, Noise: 100, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, 16*16*4, len(img.Pix))
}

func TestRenderLabel(t *testing.T) {
	plain, err := Render(Config{Width: 200, Height: 80, Color: "#000000"})
	require.NoError(t, err)
	labeled, err := Render(Config{Width: 200, Height: 80, Color: "#000000", Label: "cover", FontSize: 24})
	require.NoError(t, err)

	assert.NotEqual(t, plain.Pix, labeled.Pix, "label must change some pixels")
}

func TestRenderLabelMissingFontFallsBack(t *testing.T) {
	_, err := Render(Config{Width: 100, Height: 50, Color: "#ffffff", Label: "x", FontPath: "/no/such/font.ttf"})
	assert.NoError(t, err)
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(Config{Color: "nope"})
	assert.Error(t, err)

	_, err = Render(Config{Width: 4, Height: 4, Color: "#000000", Pattern: "stripes"})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	out := filepath.Join(dir, "cover.png")
	require.NoError(t, Generate(out, Config{Width: 8, Height: 4, Color: "#102030"}))
	assert.Equal(t, codec.PNG, codec.Classify(out))

	g, err := codec.Decode(out, codec.PNG)
	require.NoError(t, err)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, codec.RGB{R: 0x10, G: 0x20, B: 0x30}, g.At(3, 2))

	bad := filepath.Join(dir, "cover.jpg")
	assert.Error(t, Generate(bad, Config{Width: 8, Height: 4}))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateToWriter(&buf, Config{Width: 3, Height: 3, Color: "#ffffff"}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, contrastColor(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, contrastColor(color.RGBA{0, 0, 0, 255}))
}
