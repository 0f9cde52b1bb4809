package ocr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine wraps a single long-lived gosseract client. The client is
// expensive to construct (trained model load), so it is created once at
// process startup and shared; gosseract clients are not safe for concurrent
// use, so calls are serialized with a mutex.
type TesseractEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractEngine constructs the engine and applies language/tessdata
// configuration up front, failing fast if tesseract is unusable.
func NewTesseractEngine(language, tessdataDir string) (*TesseractEngine, error) {
	client := gosseract.NewClient()
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("set language %q: %w", language, err)
		}
	}
	if tessdataDir != "" {
		if err := client.SetTessdataPrefix(tessdataDir); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("set tessdata dir %q: %w", tessdataDir, err)
		}
	}
	return &TesseractEngine{client: client}, nil
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize runs OCR over a prepared (PNG-encoded) image and returns the
// detected text lines with per-line confidence in [0,1].
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) ([]Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("get text lines: %w", err)
	}

	lines := make([]Line, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		lines = append(lines, Line{
			Text:       text,
			Confidence: b.Confidence / 100.0,
		})
	}
	return lines, nil
}

func (e *TesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}
