package ocr

import (
	"context"
	"strings"
)

// Line is a single recognized text span with its engine-reported confidence
// in [0,1]. Line order follows the engine's natural detection order, which
// is not guaranteed to be strict top-to-bottom.
type Line struct {
	Text       string
	Confidence float64
}

// Result is the outcome of recognizing one image. Zero lines means the
// engine found no text; that is a valid result, not an error.
type Result struct {
	Lines []Line
}

// FullText joins the recognized lines with newlines, preserving engine order.
func (r Result) FullText() string {
	if len(r.Lines) == 0 {
		return ""
	}
	parts := make([]string, len(r.Lines))
	for i, ln := range r.Lines {
		parts[i] = ln.Text
	}
	return strings.Join(parts, "\n")
}

// AverageConfidence is the arithmetic mean of per-line confidences,
// 0.0 when no lines were detected.
func (r Result) AverageConfidence() float64 {
	if len(r.Lines) == 0 {
		return 0.0
	}
	var sum float64
	for _, ln := range r.Lines {
		sum += ln.Confidence
	}
	return sum / float64(len(r.Lines))
}

// Engine is the OCR provider contract: one prepared image in, recognized
// lines out. Implementations must be safe for concurrent use; if the
// underlying engine is not, the implementation serializes calls itself.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) ([]Line, error)
	Close() error
}
