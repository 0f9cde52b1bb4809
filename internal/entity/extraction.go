package entity

import (
	"time"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/extract"
)

// Extraction represents one processed document for data transfer between
// layers. Constructed once per request, assigned its identity by the
// storage layer on insert, immutable thereafter.
type Extraction struct {
	ID              int                    `json:"id"`
	Filename        string                 `json:"filename"`
	DocumentType    constants.DocumentType `json:"document_type"`
	Fields          extract.Fields         `json:"extracted_data"`
	// RawText is persisted for audit but never serialized into responses.
	RawText         string                 `json:"-"`
	ConfidenceScore float32                `json:"confidence_score"`
	CreatedAt       time.Time              `json:"created_at"`
}
