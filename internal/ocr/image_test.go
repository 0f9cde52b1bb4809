package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPrepareImageDownscalesWideImages(t *testing.T) {
	out, err := prepareImage(encodePNG(t, 2400, 1000), 1200)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	require.Equal(t, 1200, w)
	// height scales by the same ratio
	require.Equal(t, 500, h)
}

func TestPrepareImageKeepsSmallImages(t *testing.T) {
	out, err := prepareImage(encodePNG(t, 800, 600), 1200)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)
}

func TestPrepareImageZeroMaxWidthDisablesCap(t *testing.T) {
	out, err := prepareImage(encodePNG(t, 1600, 400), 0)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	require.Equal(t, 1600, w)
	require.Equal(t, 400, h)
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	_, err := prepareImage([]byte("definitely not an image"), 1200)
	require.Error(t, err)
}
