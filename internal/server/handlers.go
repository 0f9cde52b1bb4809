package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

// maxUploadBytes caps the multipart form we are willing to buffer.
const maxUploadBytes = 32 << 20

// DocumentProcessor is the pipeline contract consumed by the upload
// handler, satisfied by *pipeline.Processor.
type DocumentProcessor interface {
	Process(ctx context.Context, imageBytes []byte, filename string) (*entity.Extraction, error)
}

// HistoryExporter produces XLSX bytes for the export endpoint, satisfied by
// *export.Service.
type HistoryExporter interface {
	ExportHistoryXLSX(ctx context.Context, limit int) ([]byte, error)
}

type Handler struct {
	processor    DocumentProcessor
	repo         repository.ExtractionRepository
	exporter     HistoryExporter
	historyLimit int
}

func NewHandler(processor DocumentProcessor, repo repository.ExtractionRepository, exporter HistoryExporter, historyLimit int) *Handler {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &Handler{
		processor:    processor,
		repo:         repo,
		exporter:     exporter,
		historyLimit: historyLimit,
	}
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/extract", h.handleExtract)
	r.Get("/extract/{id}", h.handleGetByID)
	r.Get("/history", h.handleHistory)
	r.Get("/export", h.handleExport)
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid multipart request", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "missing file field", err)
		return
	}
	defer file.Close()

	// The pipeline only ever sees image bytes; reject other uploads here.
	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		writeFailure(w, http.StatusBadRequest, "only image files are allowed", common.ErrInvalidInput)
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "failed to read upload", err)
		return
	}

	rec, err := h.processor.Process(r.Context(), imageBytes, header.Filename)
	if err != nil {
		h.writeError(w, err, "OCR extraction failed")
		return
	}

	writeSuccess(w, "OCR extraction successful", rec)
}

func (h *Handler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid extraction id", common.ErrInvalidInput)
		return
	}

	rec, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "failed to retrieve extraction")
		return
	}
	writeSuccess(w, "extraction found", rec)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	recs, err := h.repo.ListRecent(r.Context(), h.historyLimit)
	if err != nil {
		h.writeError(w, err, "failed to retrieve history")
		return
	}
	writeSuccess(w, "extraction history", recs)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.exporter.ExportHistoryXLSX(r.Context(), h.historyLimit)
	if err != nil {
		h.writeError(w, err, "failed to export history")
		return
	}

	filename := fmt.Sprintf("extractions-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeError maps pipeline/repository errors onto the response envelope.
// Client errors keep their message; infrastructure errors degrade to a
// generic string so nothing internal reaches the body.
func (h *Handler) writeError(w http.ResponseWriter, err error, message string) {
	code := common.HTTPStatus(err)
	switch {
	case errors.Is(err, common.ErrNoTextFound):
		writeFailure(w, code, "no readable text found in image", common.ErrNoTextFound)
	case errors.Is(err, common.ErrInvalidImage):
		writeFailure(w, code, "uploaded file is not a valid image", common.ErrInvalidImage)
	case errors.Is(err, common.ErrNotFound):
		writeFailure(w, code, "extraction not found", common.ErrNotFound)
	case code < http.StatusInternalServerError:
		writeFailure(w, code, message, err)
	default:
		writeFailure(w, code, message, common.ErrInternal)
	}
}
