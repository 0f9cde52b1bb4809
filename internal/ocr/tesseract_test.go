package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ensureTesseractAvailable checks that tesseract is installed on the host.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func TestTesseractEngineRecognize(t *testing.T) {
	ensureTesseractAvailable(t)

	img := image.NewRGBA(image.Rect(0, 0, 320, 80))
	stddraw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, stddraw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString("HELLO INDIA")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	engine, err := NewTesseractEngine("eng", "")
	require.NoError(t, err)
	defer engine.Close()

	r := NewRecognizer(engine, Config{}, nil)
	res, err := r.Recognize(context.Background(), buf.Bytes())
	require.NoError(t, err)

	got := strings.ToLower(res.FullText())
	require.Contains(t, got, "hello")
	require.Greater(t, res.AverageConfidence(), 0.0)
}
