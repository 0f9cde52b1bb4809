package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nikhilbhat/docuscan/internal/repository"
)

// Service is a tiny façade over the extraction repository that produces
// XLSX bytes for history exports.
type Service struct {
	repo   repository.ExtractionRepository
	logger *slog.Logger
}

func NewService(repo repository.ExtractionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportHistoryXLSX returns an XLSX workbook (as bytes) covering the most
// recent extractions, newest first.
func (s *Service) ExportHistoryXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID",
		"Filename",
		"Document Type",
		"Name",
		"Email",
		"Phone",
		"Aadhaar",
		"PAN",
		"Date of Birth",
		"State",
		"Country",
		"Confidence",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ID)
		write(2, r.Filename)
		write(3, string(r.DocumentType))
		write(4, r.Fields.Name)
		write(5, r.Fields.Email)
		write(6, r.Fields.Phone)
		write(7, r.Fields.Aadhaar)
		write(8, r.Fields.PAN)
		write(9, r.Fields.DOB)
		write(10, r.Fields.State)
		write(11, r.Fields.Country)
		write(12, fmt.Sprintf("%.4f", r.ConfidenceScore))
		write(13, r.CreatedAt.UTC().Format(time.RFC3339))
		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "C", 20) // document type
	_ = f.SetColWidth(sheet, "D", "E", 26) // name, email
	_ = f.SetColWidth(sheet, "M", "M", 24) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
