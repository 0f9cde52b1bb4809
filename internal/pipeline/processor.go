// Package pipeline composes the three extraction stages: text recognition,
// field extraction, and document classification, then hands the result to
// storage.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nikhilbhat/docuscan/internal/classify"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/extract"
	"github.com/nikhilbhat/docuscan/internal/ocr"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

// Recognizer is the OCR stage contract, satisfied by *ocr.Recognizer.
type Recognizer interface {
	Recognize(ctx context.Context, imageBytes []byte) (ocr.Result, error)
}

// Processor coordinates recognize → extract → classify → persist for one
// document. It holds no per-request state and is safe for concurrent use.
type Processor struct {
	recognizer Recognizer
	repo       repository.ExtractionRepository
	logger     *slog.Logger
}

func NewProcessor(recognizer Recognizer, repo repository.ExtractionRepository, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{recognizer: recognizer, repo: repo, logger: logger}
}

// Process runs the full pipeline for one uploaded image and returns the
// persisted record. A record is either fully extracted and stored or not
// stored at all; the first error encountered surfaces as-is.
func (p *Processor) Process(ctx context.Context, imageBytes []byte, filename string) (*entity.Extraction, error) {
	res, err := p.recognizer.Recognize(ctx, imageBytes)
	if err != nil {
		p.logger.Error("processor.recognize.failed", "filename", filename, "error", err)
		return nil, err
	}

	fullText := res.FullText()
	if strings.TrimSpace(fullText) == "" {
		// Extraction and classification on empty text are meaningless;
		// nothing is stored.
		p.logger.Info("processor.recognize.empty", "filename", filename)
		return nil, common.WrapError(common.ErrNoTextFound, "no readable text in image")
	}
	p.logger.Info("processor.recognize.ok",
		"filename", filename,
		"lines", len(res.Lines),
		"confidence", res.AverageConfidence(),
	)

	fields := extract.Extract(fullText)
	if err := extract.ValidateFields(fields); err != nil {
		p.logger.Error("processor.extract.invalid", "filename", filename, "error", err)
		return nil, common.WrapError(common.ErrInternal, err.Error())
	}

	docType := classify.Classify(fields, fullText)
	p.logger.Info("processor.classify.ok", "filename", filename, "document_type", docType)

	rec, err := p.repo.Insert(ctx, repository.InsertRequest{
		Filename:        filename,
		DocumentType:    docType,
		Fields:          fields,
		RawText:         fullText,
		ConfidenceScore: float32(res.AverageConfidence()),
	})
	if err != nil {
		p.logger.Error("processor.persist.failed", "filename", filename, "error", err)
		return nil, err
	}

	p.logger.Info("processor.persist.ok", "filename", filename, "id", rec.ID)
	return rec, nil
}
