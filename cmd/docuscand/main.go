package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/export"
	"github.com/nikhilbhat/docuscan/internal/ocr"
	"github.com/nikhilbhat/docuscan/internal/pipeline"
	"github.com/nikhilbhat/docuscan/internal/repository"
	"github.com/nikhilbhat/docuscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.HealthTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Bootstrap(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	// OCR engine: heavyweight, constructed once, shared by all requests.
	engine, err := ocr.NewTesseractEngine(cfg.OCR.Language, cfg.OCR.TessdataDir)
	if err != nil {
		logger.Error("failed to initialize ocr engine", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Error("failed to close ocr engine", "error", err)
		}
	}()
	logger.Info("ocr engine ready", "engine", engine.Name(), "language", cfg.OCR.Language)

	recognizer := ocr.NewRecognizer(engine, ocr.Config{MaxWidth: cfg.OCR.MaxWidth}, logger)
	repo := repository.NewExtractionRepository(entc, logger)
	processor := pipeline.NewProcessor(recognizer, repo, logger)
	exporter := export.NewService(repo, logger)

	router := server.NewRouter(cfg.Server, processor, repo, exporter, logger)
	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
