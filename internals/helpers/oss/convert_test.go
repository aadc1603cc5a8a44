package oss

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestConvertToWebPDownscales(t *testing.T) {
	src := pngBytes(t, 1920, 1080)

	out, err := ConvertToWebP(src, WebPOptions{MaxW: 960, MaxH: 960, Quality: 80})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	b := decoded.Bounds()
	assert.LessOrEqual(t, b.Dx(), 960)
	assert.LessOrEqual(t, b.Dy(), 960)
	// aspect ratio 16:9 dipertahankan
	assert.Equal(t, 960, b.Dx())
	assert.Equal(t, 540, b.Dy())
}

func TestConvertToWebPKeepsSmallImages(t *testing.T) {
	src := pngBytes(t, 300, 200)

	out, err := ConvertToWebP(src, WebPOptions{MaxW: 960, MaxH: 960, Quality: 80})
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestConvertToWebPRejectsGarbage(t *testing.T) {
	_, err := ConvertToWebP([]byte("bukan gambar"), WebPOptions{})
	assert.Error(t, err)
}

func TestConvertToWebPRejectsEmpty(t *testing.T) {
	_, err := ConvertToWebP(nil, WebPOptions{})
	assert.Error(t, err)
}
