// Package server wires the HTTP surface: routing, middleware, and the
// response envelope. All business logic lives behind the handler
// interfaces.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

// NewRouter assembles the full route tree.
func NewRouter(cfg common.ServerConfig, processor DocumentProcessor, repo repository.ExtractionRepository, exporter HistoryExporter, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		AllowCredentials: false,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "docuscan API running"})
	})

	h := NewHandler(processor, repo, exporter, cfg.HistoryLimit)
	r.Route("/api/ocr", h.Attach)

	return r
}
