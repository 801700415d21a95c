package imageflow

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 8 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 160, B: 30, A: 255})
		}
	}
	return img
}

func TestNormalizeUpload_SmallJpegPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(200, 100), nil))
	in := buf.Bytes()

	name, out, err := NormalizeUpload("ring.jpg", in)
	require.NoError(t, err)
	require.Equal(t, "ring.jpg", name)
	require.Equal(t, in, out, "in-budget jpeg is passed through untouched")
}

func TestNormalizeUpload_OversizedIsScaledDown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(3200, 1000), nil))

	name, out, err := NormalizeUpload("big.jpg", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "big.jpg", name)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.LessOrEqual(t, decoded.Bounds().Dx(), 1600)
	require.LessOrEqual(t, decoded.Bounds().Dy(), 1600)
}

func TestNormalizeUpload_OversizedPngStaysPng(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(1700, 100)))

	name, out, err := NormalizeUpload("chart.png", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "chart.png", name)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "png", format)
}

func TestNormalizeUpload_WebpBecomesJpeg(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, testImage(300, 200), &webp.Options{Quality: 80}))

	name, out, err := NormalizeUpload("photo.webp", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", name)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
}

func TestNormalizeUpload_RejectsNonImage(t *testing.T) {
	_, _, err := NormalizeUpload("notes.txt", []byte("just text"))
	require.Error(t, err)
}
