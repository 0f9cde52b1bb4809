package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/gen/ent"
	"github.com/nikhilbhat/docuscan/gen/ent/extraction"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/extract"
	"github.com/nikhilbhat/docuscan/internal/utils"
)

// InsertRequest wraps the pipeline output handed to storage. The row is
// written whole or not at all; there is no partial persistence.
type InsertRequest struct {
	Filename        string
	DocumentType    constants.DocumentType
	Fields          extract.Fields
	RawText         string
	ConfidenceScore float32
}

type ExtractionRepository interface {
	Insert(ctx context.Context, req InsertRequest) (*entity.Extraction, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Extraction, error)
	GetByID(ctx context.Context, id int) (*entity.Extraction, error)
}

type extractionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionRepository(client *ent.Client, logger *slog.Logger) ExtractionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &extractionRepository{client: client, logger: logger}
}

func (r *extractionRepository) Insert(ctx context.Context, req InsertRequest) (*entity.Extraction, error) {
	f := req.Fields

	builder := r.client.Extraction.Create().
		SetFilename(req.Filename).
		SetDocumentType(string(req.DocumentType)).
		SetNillableName(nilIfEmpty(f.Name)).
		SetNillableEmail(nilIfEmpty(f.Email)).
		SetNillablePhone(nilIfEmpty(f.Phone)).
		SetNillableAadhaar(nilIfEmpty(f.Aadhaar)).
		SetNillablePan(nilIfEmpty(f.PAN)).
		SetNillableAddress(nilIfEmpty(f.Address)).
		SetNillableState(nilIfEmpty(f.State)).
		SetNillableCountry(nilIfEmpty(f.Country)).
		SetRawText(req.RawText).
		SetConfidenceScore(req.ConfidenceScore)

	if f.DOB != "" {
		// Extraction normalized the value; a parse failure here is a bug.
		dob, err := time.Parse("2006-01-02", f.DOB)
		if err != nil {
			return nil, common.WrapError(common.ErrInvalidInput, "malformed dob "+f.DOB)
		}
		builder = builder.SetDob(dob)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert extraction", "filename", req.Filename, "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return utils.ToExtraction(rec), nil
}

func (r *extractionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Extraction, error) {
	recs, err := r.client.Extraction.Query().
		Order(ent.Desc(extraction.FieldCreatedAt), ent.Desc(extraction.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extractions", "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}

	result := make([]*entity.Extraction, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToExtraction(rec)
	}
	return result, nil
}

func (r *extractionRepository) GetByID(ctx context.Context, id int) (*entity.Extraction, error) {
	rec, err := r.client.Extraction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get extraction", "id", id, "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return utils.ToExtraction(rec), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
