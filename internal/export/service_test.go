package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/extract"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

type fakeRepo struct {
	recs []*entity.Extraction
}

func (f fakeRepo) Insert(context.Context, repository.InsertRequest) (*entity.Extraction, error) {
	return nil, common.ErrInternal
}

func (f fakeRepo) ListRecent(context.Context, int) ([]*entity.Extraction, error) {
	return f.recs, nil
}

func (f fakeRepo) GetByID(context.Context, int) (*entity.Extraction, error) {
	return nil, common.ErrNotFound
}

func TestExportHistoryXLSX(t *testing.T) {
	repo := fakeRepo{recs: []*entity.Extraction{
		{
			ID:              2,
			Filename:        "pan.jpg",
			DocumentType:    constants.PAN,
			Fields:          extract.Fields{Name: "Rahul Kumar", PAN: "ABCDE1234F", DOB: "1998-05-12"},
			ConfidenceScore: 0.87,
			CreatedAt:       time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:              1,
			Filename:        "card.png",
			DocumentType:    constants.BusinessCard,
			Fields:          extract.Fields{Email: "rohan@acme.com", Phone: "9876543210"},
			ConfidenceScore: 0.73,
			CreatedAt:       time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportHistoryXLSX(context.Background(), 100)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "ID", rows[0][0])
	require.Equal(t, "Document Type", rows[0][2])

	require.Equal(t, "pan.jpg", rows[1][1])
	require.Equal(t, "PAN", rows[1][2])
	require.Equal(t, "ABCDE1234F", rows[1][7])

	require.Equal(t, "card.png", rows[2][1])
	require.Equal(t, "BUSINESS_CARD", rows[2][2])
}

func TestExportHistoryXLSXEmpty(t *testing.T) {
	svc := NewService(fakeRepo{}, nil)
	data, err := svc.ExportHistoryXLSX(context.Background(), 100)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
