package ocr

import (
	"context"
	"log/slog"
	"time"

	"github.com/nikhilbhat/docuscan/internal/common"
)

// Config controls image preparation ahead of the engine.
type Config struct {
	// MaxWidth caps image width before OCR; wider images are downscaled
	// proportionally. Zero disables the cap.
	MaxWidth int
}

const DefaultMaxWidth = 1200

// Recognizer turns raw image bytes into recognized text. It owns no state
// beyond the injected engine and is safe for concurrent use.
type Recognizer struct {
	engine Engine
	cfg    Config
	logger *slog.Logger
}

func NewRecognizer(engine Engine, cfg Config, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxWidth == 0 {
		cfg.MaxWidth = DefaultMaxWidth
	}
	return &Recognizer{engine: engine, cfg: cfg, logger: logger}
}

// Recognize decodes and prepares the image, then invokes the engine.
// Undecodable input maps to common.ErrInvalidImage, engine failures to
// common.ErrRecognition. Zero detections is a valid empty Result.
func (r *Recognizer) Recognize(ctx context.Context, imageBytes []byte) (Result, error) {
	start := time.Now()

	prepared, err := prepareImage(imageBytes, r.cfg.MaxWidth)
	if err != nil {
		r.logger.Error("image preparation failed", "error", err)
		return Result{}, common.WrapError(common.ErrInvalidImage, err.Error())
	}

	lines, err := r.engine.Recognize(ctx, prepared)
	if err != nil {
		r.logger.Error("ocr engine failed", "engine", r.engine.Name(), "error", err)
		return Result{}, common.WrapError(common.ErrRecognition, err.Error())
	}

	res := Result{Lines: lines}
	r.logger.Debug("ocr ok",
		"engine", r.engine.Name(),
		"lines", len(lines),
		"confidence", res.AverageConfidence(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
