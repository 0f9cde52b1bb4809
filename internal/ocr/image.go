package ocr

import (
	"bytes"
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"

	"golang.org/x/image/draw"

	// Register decoders for the formats we accept from uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// prepareImage decodes raw upload bytes, converts to RGBA, and downscales
// proportionally when the image is wider than maxWidth. Oversized scans blow
// up OCR latency and memory; capping width bounds both. The result is
// re-encoded as PNG for the engine.
func prepareImage(data []byte, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	rgba := toRGBA(src)
	if maxWidth > 0 && rgba.Bounds().Dx() > maxWidth {
		rgba = scaleToWidth(rgba, maxWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("encode prepared image: %w", err)
	}
	return buf.Bytes(), nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	stddraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, stddraw.Src)
	return dst
}

// scaleToWidth resizes to the target width, height scaled by the same ratio
// to preserve aspect ratio. CatmullRom keeps glyph edges sharp enough for
// the engine.
func scaleToWidth(src *image.RGBA, width int) *image.RGBA {
	ratio := float64(width) / float64(src.Bounds().Dx())
	height := int(float64(src.Bounds().Dy()) * ratio)
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
